package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/storage"
)

// SnapshotService exports every goal with its tasks as one JSON document.
type SnapshotService struct {
	goalRepo        repository.GoalRepository
	taskRepo        repository.TaskRepository
	progressService *ProgressService
	storage         storage.Storage
	now             func() time.Time
}

func NewSnapshotService(
	goalRepo repository.GoalRepository,
	taskRepo repository.TaskRepository,
	progressService *ProgressService,
	storage storage.Storage,
) *SnapshotService {
	return &SnapshotService{
		goalRepo:        goalRepo,
		taskRepo:        taskRepo,
		progressService: progressService,
		storage:         storage,
		now:             time.Now,
	}
}

func (s *SnapshotService) Export() (*model.Snapshot, error) {
	goals, err := s.goalRepo.Goals()
	if err != nil {
		return nil, err
	}

	snapshot := &model.Snapshot{
		TakenAt: s.now().UTC(),
		Goals:   make([]model.SnapshotGoal, 0, len(goals)),
	}

	for _, goal := range goals {
		tasks, err := s.taskRepo.Tasks(goal.ID)
		if err != nil {
			return nil, err
		}

		percent, err := s.progressService.Compute(goal.ID)
		if err != nil {
			return nil, err
		}

		snapshot.Goals = append(snapshot.Goals, model.SnapshotGoal{
			Goal:    *goal,
			Percent: percent,
			Tasks:   tasks,
		})
	}

	return snapshot, nil
}

// Save stores a fresh export under snapshots/ and returns where it can be read.
func (s *SnapshotService) Save() (string, error) {
	snapshot, err := s.Export()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := fmt.Sprintf("snapshots/%s-%s.json", snapshot.TakenAt.Format("20060102T150405Z"), uuid.New().String())
	if err := s.storage.Save(path, &buf); err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}

	slog.Info("saved snapshot", "path", path, "goals", len(snapshot.Goals))

	return s.storage.URL(path), nil
}
