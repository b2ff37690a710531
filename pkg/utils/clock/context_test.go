package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/reflect-lab/stella/pkg/utils/clock"
)

func TestClock(t *testing.T) {
	now := time.Now()
	c := func() time.Time {
		return now
	}
	ctx := context.Background()
	ctx = clock.With(ctx, c)
	gt.Equal(t, clock.Now(ctx), now)
}

func TestTimezone(t *testing.T) {
	ctx := context.Background()
	gt.Equal(t, clock.Timezone(ctx), time.Local)

	ctx = clock.WithTimezone(ctx, time.UTC)
	gt.Equal(t, clock.Timezone(ctx), time.UTC)

	// a dated file name follows the context timezone, not the host's
	now := time.Date(2025, 4, 1, 23, 30, 0, 0, time.UTC)
	ctx = clock.With(ctx, func() time.Time { return now })
	seoul := time.FixedZone("KST", 9*60*60)
	ctx = clock.WithTimezone(ctx, seoul)
	gt.Equal(t, clock.Now(ctx).In(clock.Timezone(ctx)).Format("20060102"), "20250402")
}
