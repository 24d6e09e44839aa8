package summarizer

import "paper-letter/models"

const SYSTEM_INSTRUCTION = `You are a science communicator who explains complex research clearly at a specified reading level. Stay factually accurate and avoid hallucinating details not present in the original text.`

const PREREADING_SYSTEM_INSTRUCTION = `You are an expert educator who helps readers prepare for complex academic papers.`

// summaryPrompts 는 읽기 수준별 요약 지시문이다. 세 수준 모두 생성되어야
// 요약 단계가 완료된 것으로 본다.
var summaryPrompts = map[models.ReadingLevel]string{
	models.ReadingLevelGrade5: `Explain the following academic paper to a 5th-grade student using simple everyday words and short sentences. Avoid technical jargon; if you must use a technical term, briefly explain it. Focus on: what the paper is about, why it matters, and the big idea. Use 3-5 short paragraphs.`,

	models.ReadingLevelMiddle: `Explain the following academic paper to a middle school student (around 12-15 years old). You can use some technical terms, but briefly explain them in simple words. Cover: what problem the paper solves, why it's important, and roughly how it solves it. Use 3-6 paragraphs.`,

	models.ReadingLevelHigh: `Explain the following academic paper to a high school student (16-18 years old) with good reading skills but no domain expertise. You can use more technical vocabulary, but avoid dense math. Make sure to explain:
- What problem the paper addresses
- Why the problem matters
- The main idea behind the solution
- Any key results or findings
Use 4-7 paragraphs.`,
}

const QUIZ_PROMPT = `Create a quiz to test understanding of this paper's main ideas.
Generate 6-8 multiple-choice questions.
Each question must have exactly 4 options and 1 correct answer.
The incorrect options should be plausible but clearly wrong.
After each question, provide a short explanation for why the correct answer is right.
Output your answer as strict JSON with this structure:

{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correct_index": 0,
      "explanation": "string"
    }
  ]
}

You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

const PREREADING_PROMPT = `Analyze this academic paper and create pre-reading materials to help readers prepare.

Your task is to:
1. Identify 5-10 key technical terms (jargon) with clear, accessible definitions
2. List 3-5 prerequisite concepts readers should understand beforehand
3. Extract 5-8 key concepts covered in the paper
4. Rate the difficulty for a general scientific audience on a 1-5 scale (1 = accessible to anyone, 5 = expert only)
5. Estimate reading time in minutes based on paper length and complexity

Output your answer as strict JSON with this structure:

{
  "jargon": [
    {
      "term": "string",
      "definition": "string"
    }
  ],
  "prerequisites": ["string"],
  "key_concepts": ["string"],
  "difficulty": 3,
  "estimated_read_time_minutes": 25
}

You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`
