package service

import (
	"Chirp/config"
	"context"
)

// withDeadline 每次聚合请求的超时，整个流水线共用同一个 ctx
func withDeadline(ctx context.Context, conf *config.Config) (context.Context, context.CancelFunc) {
	if conf == nil || conf.Aggregate == nil || conf.Aggregate.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, conf.Aggregate.Timeout)
}
