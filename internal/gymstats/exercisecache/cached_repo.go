package exercisecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/gymstats/sport"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=cached_repo_mocks_test.go -package=exercisecache_test

type exerciseRepo interface {
	Get(ctx context.Context, exerciseName string) (*Exercise, error)
	List(ctx context.Context, category *sport.Placement) ([]Exercise, error)
	Upsert(ctx context.Context, exercise Exercise) (*Exercise, error)
	UpdateInjuryData(ctx context.Context, exerciseName string, contraindications []Contraindication, benefits []TherapeuticBenefit) error
	UpdateSportRatings(ctx context.Context, exerciseName string, ratings SportRatings) error
}

// CachedRepo keeps candidate lists in process memory. Exercise metadata only changes
// through the import tooling, so any write drops the whole cache.
type CachedRepo struct {
	repo       exerciseRepo
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedRepo(repo exerciseRepo, sizeMB int, ttl time.Duration) *CachedRepo {
	return &CachedRepo{
		repo:       repo,
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: int(ttl.Seconds()),
	}
}

func listKey(category *sport.Placement) []byte {
	if category == nil {
		return []byte("list:*")
	}
	return []byte("list:" + category.String())
}

func exerciseKey(name string) []byte {
	return []byte("ex:" + name)
}

// List serves the candidates of a category from memory. freecache caps an entry at 1/1024
// of the cache size, so a list is stored as a name index plus one entry per exercise.
func (c *CachedRepo) List(ctx context.Context, category *sport.Placement) ([]Exercise, error) {
	if exercises, ok := c.cachedList(category); ok {
		return exercises, nil
	}

	exercises, err := c.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		exJson, err := json.Marshal(ex)
		if err != nil {
			return nil, fmt.Errorf("marshal exercise: %w", err)
		}
		if err := c.cache.Set(exerciseKey(ex.ExerciseName), exJson, c.ttlSeconds); err != nil {
			log.Warnf("exercise cache set [%s]: %s", ex.ExerciseName, err)
		}
		names = append(names, ex.ExerciseName)
	}

	namesJson, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise names: %w", err)
	}
	if err := c.cache.Set(listKey(category), namesJson, c.ttlSeconds); err != nil {
		log.Warnf("exercise cache set [%s]: %s", listKey(category), err)
	}

	return exercises, nil
}

// cachedList reports false when the index or any of its exercises is missing.
func (c *CachedRepo) cachedList(category *sport.Placement) ([]Exercise, bool) {
	namesJson, err := c.cache.Get(listKey(category))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("exercise cache get [%s]: %s", listKey(category), err)
		}
		return nil, false
	}

	var names []string
	if err := json.Unmarshal(namesJson, &names); err != nil {
		log.Errorf("exercise cache: corrupt index [%s]: %s", listKey(category), err)
		return nil, false
	}

	exercises := make([]Exercise, 0, len(names))
	for _, name := range names {
		exJson, err := c.cache.Get(exerciseKey(name))
		if err != nil {
			return nil, false
		}
		var ex Exercise
		if err := json.Unmarshal(exJson, &ex); err != nil {
			log.Errorf("exercise cache: corrupt entry [%s]: %s", name, err)
			return nil, false
		}
		exercises = append(exercises, ex)
	}
	return exercises, true
}

func (c *CachedRepo) Get(ctx context.Context, exerciseName string) (*Exercise, error) {
	return c.repo.Get(ctx, exerciseName)
}

func (c *CachedRepo) Upsert(ctx context.Context, exercise Exercise) (*Exercise, error) {
	stored, err := c.repo.Upsert(ctx, exercise)
	if err != nil {
		return nil, err
	}
	c.cache.Clear()
	return stored, nil
}

func (c *CachedRepo) UpdateInjuryData(
	ctx context.Context,
	exerciseName string,
	contraindications []Contraindication,
	benefits []TherapeuticBenefit,
) error {
	if err := c.repo.UpdateInjuryData(ctx, exerciseName, contraindications, benefits); err != nil {
		return err
	}
	c.cache.Clear()
	return nil
}

func (c *CachedRepo) UpdateSportRatings(ctx context.Context, exerciseName string, ratings SportRatings) error {
	if err := c.repo.UpdateSportRatings(ctx, exerciseName, ratings); err != nil {
		return err
	}
	c.cache.Clear()
	return nil
}
