package config

import "time"

const (
	CountGrouped = "grouped" // 按 tweet_id 分组的单次聚合查询
	CountFanout  = "fanout"  // 逐条计数，受 FanoutLimit 限制并发
)

const (
	SelfFollowKeep = "keep"
	SelfFollowSkip = "skip"
)

type Aggregate struct {
	CountStrategy string        `json:"count_strategy" yaml:"count_strategy"`
	FanoutLimit   int           `json:"fanout_limit" yaml:"fanout_limit"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

type Relation struct {
	// SelfFollow 自己关注自己的边如何处理：keep 原样保留，skip 从列表、集合与计数中剔除
	SelfFollow string `json:"self_follow" yaml:"self_follow"`
}

func (r *Relation) ExcludeSelf() bool {
	return r != nil && r.SelfFollow == SelfFollowSkip
}
