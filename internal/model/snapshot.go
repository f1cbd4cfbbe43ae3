package model

import "time"

type Snapshot struct {
	TakenAt time.Time      `json:"taken_at"`
	Goals   []SnapshotGoal `json:"goals"`
}

type SnapshotGoal struct {
	Goal
	Percent int     `json:"percent"`
	Tasks   []*Task `json:"tasks"`
}
