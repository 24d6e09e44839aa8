package feeder

import (
	"context"
	"sync"
	"time"
)

// IntervalLimiter 는 arXiv API 호출 시작 시점 사이의 최소 간격을 보장한다.
// 프로세스 전체에서 하나의 인스턴스를 공유하며(쿼리별이 아님), 마지막 호출
// 시각을 내부 상태로 소유한다. 외부 API 에 문서화된 하드 리밋은 없으므로
// 쿼터 카운터가 아니라 "버스트 금지" 정책만 구현한다.
type IntervalLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall time.Time

	// 테스트에서 가짜 시계를 주입하기 위한 훅. 운영 코드는 기본값을 쓴다.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewIntervalLimiter 는 주어진 최소 간격의 리미터를 생성한다.
// 간격이 0 이하이면 제한 없이 즉시 통과시킨다.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Wait 는 직전 호출 시작 시점부터 최소 간격이 지날 때까지 대기한 뒤
// 이번 호출의 시작 시각을 기록한다. busy-wait 하지 않고 suspend 하며,
// 컨텍스트가 취소되면 즉시 ctx.Err() 를 반환한다.
func (l *IntervalLimiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()

		now := l.now()
		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.interval - now.Sub(l.lastCall)
		}

		if delay <= 0 {
			// 즉시 호출 가능
			l.lastCall = now
			l.mu.Unlock()
			return nil
		}

		// 잠시 대기해야 하는 경우: 락을 풀고 대기 후 다시 루프를 반복한다.
		l.mu.Unlock()
		if err := l.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
