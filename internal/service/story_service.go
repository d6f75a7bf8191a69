package service

import (
	"context"
	"math"
	"strings"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
)

type StoryStore interface {
	Create(ctx context.Context, story *models.Story) (string, error)
	Update(ctx context.Context, story *models.Story) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, userID string) ([]models.Story, error)
	Get(ctx context.Context, id string) (*models.Story, error)
}

// UnavailableStoryStore stands in until stories have a backend. Reads come
// back empty, writes fail with ErrNotAvailable.
type UnavailableStoryStore struct{}

func (UnavailableStoryStore) Create(ctx context.Context, story *models.Story) (string, error) {
	return "", ErrNotAvailable
}

func (UnavailableStoryStore) Update(ctx context.Context, story *models.Story) error {
	return ErrNotAvailable
}

func (UnavailableStoryStore) Delete(ctx context.Context, id string) error {
	return ErrNotAvailable
}

func (UnavailableStoryStore) List(ctx context.Context, userID string) ([]models.Story, error) {
	return []models.Story{}, nil
}

func (UnavailableStoryStore) Get(ctx context.Context, id string) (*models.Story, error) {
	return nil, nil
}

var defaultPrompts = []models.StoryPrompt{
	{
		ID:         "1",
		Title:      "Early Memories",
		Question:   "What is your earliest childhood memory?",
		Category:   "childhood",
		Difficulty: "easy",
		Tags:       []string{"childhood", "memories"},
		Order:      1,
	},
	{
		ID:         "2",
		Title:      "Family Traditions",
		Question:   "What family traditions were most important to you growing up?",
		Category:   "family",
		Difficulty: "easy",
		Tags:       []string{"family", "traditions"},
		Order:      2,
	},
	{
		ID:         "3",
		Title:      "Life Lessons",
		Question:   "What is the most valuable lesson life has taught you?",
		Category:   "wisdom",
		Difficulty: "medium",
		Tags:       []string{"wisdom", "lessons"},
		Order:      3,
	},
}

type StoryService struct {
	store   StoryStore
	prompts []models.StoryPrompt
}

func NewStoryService(store StoryStore) *StoryService {
	return &StoryService{
		store:   store,
		prompts: defaultPrompts,
	}
}

func (s *StoryService) Prompts() []models.StoryPrompt {
	out := make([]models.StoryPrompt, len(s.prompts))
	copy(out, s.prompts)
	return out
}

func (s *StoryService) PromptsByCategory(category string) []models.StoryPrompt {
	out := []models.StoryPrompt{}
	for _, p := range s.prompts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *StoryService) prompt(id string) (models.StoryPrompt, bool) {
	for _, p := range s.prompts {
		if p.ID == id {
			return p, true
		}
	}
	return models.StoryPrompt{}, false
}

func (s *StoryService) buildStory(userID string, req models.StoryRequest) *models.Story {
	story := &models.Story{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		PromptID:  req.PromptID,
		Status:    req.Status,
		WordCount: WordCount(req.Content),
	}
	if story.Status == "" {
		story.Status = models.StoryStatusDraft
	}
	if p, ok := s.prompt(req.PromptID); ok {
		story.PromptTitle = p.Title
		story.PromptQuestion = p.Question
		story.Category = p.Category
	}
	return story
}

func (s *StoryService) CreateStory(ctx context.Context, userID string, req models.StoryRequest) (string, error) {
	return s.store.Create(ctx, s.buildStory(userID, req))
}

// UpdateStory replaces the editable fields of story id. The word count is
// recomputed from the new content.
func (s *StoryService) UpdateStory(ctx context.Context, id, userID string, req models.StoryRequest) error {
	story := s.buildStory(userID, req)
	story.ID = id
	return s.store.Update(ctx, story)
}

func (s *StoryService) ListStories(ctx context.Context, userID string) ([]models.Story, error) {
	return s.store.List(ctx, userID)
}

func (s *StoryService) GetStory(ctx context.Context, id string) (*models.Story, error) {
	return s.store.Get(ctx, id)
}

func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func Progress(stories []models.Story) models.StoryProgress {
	completed := 0
	for _, story := range stories {
		if story.Status == models.StoryStatusComplete {
			completed++
		}
	}

	progress := models.StoryProgress{Completed: completed, Total: len(stories)}
	if progress.Total > 0 {
		progress.Percentage = int(math.Round(float64(completed) / float64(progress.Total) * 100))
	}
	return progress
}
