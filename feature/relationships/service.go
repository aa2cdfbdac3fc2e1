package relationships

import (
	"context"
	"errors"
	"fmt"
	"time"

	"follow-checker/core/classify"
	"follow-checker/core/extract"
	"follow-checker/core/present"
	"follow-checker/core/reconcile"
	"follow-checker/core/resultcache"
	"follow-checker/core/storage"

	"go.uber.org/zap"
)

var (
	// ErrStorageUnavailable is returned when no storage client is configured.
	ErrStorageUnavailable = errors.New("storage is not configured")
	// ErrDirectionUnavailable is returned when the cached result lacks the converse direction.
	ErrDirectionUnavailable = errors.New("cached result was computed without the converse direction")
)

// Direction selects one list of a result.
type Direction string

const (
	// DirectionNotFollowingBack: accounts you follow that do not follow you.
	DirectionNotFollowingBack Direction = "not_following_back"
	// DirectionNotFollowedBack: followers you do not follow.
	DirectionNotFollowedBack Direction = "not_followed_back"
)

// ParseDirection parses a direction. Empty means DirectionNotFollowingBack.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionNotFollowingBack:
		return DirectionNotFollowingBack, nil
	case DirectionNotFollowedBack:
		return DirectionNotFollowedBack, nil
	default:
		return "", fmt.Errorf("invalid direction %q", s)
	}
}

// FileName returns the download file name of the direction.
func (d Direction) FileName() string {
	if d == DirectionNotFollowedBack {
		return present.NotFollowedBackFile
	}
	return present.NotFollowingBackFile
}

// CompareRequest names the two exports to compare.
type CompareRequest struct {
	Followers Source
	Following Source
	// Both also computes followers you do not follow back.
	Both bool
}

// InputInfo describes how one export was read.
type InputInfo struct {
	Role      extract.Role `json:"role"`
	Source    string       `json:"source"`
	Shape     string       `json:"shape"`
	Usernames int          `json:"usernames"`
	Skipped   int          `json:"skipped"`
}

// Report is the outcome of a comparison.
type Report struct {
	NotFollowingBack []string          `json:"not_following_back"`
	NotFollowedBack  []string          `json:"not_followed_back,omitempty"`
	Summary          reconcile.Summary `json:"summary"`
	Inputs           []InputInfo       `json:"inputs"`
	// Cached reports whether the result was written to the cache slot.
	Cached bool `json:"cached"`
}

// Options configures a Service.
type Options struct {
	// Cache stores the last result. Defaults to an in-process store.
	Cache resultcache.Store
	// Client is the object store. Optional; required for storage inputs and publishing.
	Client storage.Client
	// Bucket holds exports and published results.
	Bucket string
	// ExportsPrefix is the folder CompareObjects reads exports from.
	ExportsPrefix string
	// ResultsPrefix is the folder published results are written to.
	ResultsPrefix string
	// Classifier is the optional post-processing stage.
	Classifier *classify.Stage
	// Logger receives service logs.
	Logger *zap.Logger
}

// Service handles relationship comparisons.
type Service struct {
	cache         resultcache.Store
	client        storage.Client
	bucket        string
	exportsPrefix string
	resultsPrefix string
	classifier    *classify.Stage
	logger        *zap.Logger
}

// NewService creates a new relationships service.
func NewService(opts Options) *Service {
	if opts.Cache == nil {
		opts.Cache = resultcache.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Service{
		cache:         opts.Cache,
		client:        opts.Client,
		bucket:        opts.Bucket,
		exportsPrefix: opts.ExportsPrefix,
		resultsPrefix: opts.ResultsPrefix,
		classifier:    opts.Classifier,
		logger:        opts.Logger,
	}
}

// Compare reads both exports, reconciles them and caches the result.
// Extraction failures are returned as *extract.ExtractionError.
func (s *Service) Compare(ctx context.Context, req CompareRequest) (*Report, error) {
	followersData, followingData, err := ReadPair(ctx, req.Followers, req.Following)
	if err != nil {
		return nil, err
	}

	followers, err := extractRole(followersData, extract.RoleFollowers)
	if err != nil {
		return nil, err
	}
	following, err := extractRole(followingData, extract.RoleFollowing)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(following.Usernames, followers.Usernames, reconcile.Options{Both: req.Both})

	if s.classifier.Enabled() {
		result.NotFollowingBack = s.classifier.Apply(ctx, result.NotFollowingBack)
		result.Summary.NotFollowingBack = len(result.NotFollowingBack)
	}

	if result.Summary.DuplicateFollowing > 0 {
		s.logger.Warn("Following export contains duplicate accounts; they are kept in the result",
			zap.Int("duplicates", result.Summary.DuplicateFollowing))
	}

	report := &Report{
		NotFollowingBack: result.NotFollowingBack,
		NotFollowedBack:  result.NotFollowedBack,
		Summary:          result.Summary,
		Inputs: []InputInfo{
			inputInfo(followers, req.Followers),
			inputInfo(following, req.Following),
		},
	}

	err = s.cache.Save(ctx, resultcache.LastResultKey, resultcache.Entry{
		NotFollowingBack: result.NotFollowingBack,
		NotFollowedBack:  result.NotFollowedBack,
		Both:             req.Both,
	})
	if err != nil {
		// Cache writes are best effort
		s.logger.Warn("Failed to cache result", zap.Error(err))
	} else {
		report.Cached = true
	}

	s.logger.Info("Comparison completed",
		zap.Int("following", result.Summary.Following),
		zap.Int("followers", result.Summary.Followers),
		zap.Int("not_following_back", result.Summary.NotFollowingBack),
		zap.Int("not_followed_back", result.Summary.NotFollowedBack),
	)

	return report, nil
}

// CompareObjects compares two exports stored in the bucket. Object names are
// relative to the exports folder.
func (s *Service) CompareObjects(ctx context.Context, followersObject, followingObject string, both bool) (*Report, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	return s.Compare(ctx, CompareRequest{
		Followers: ObjectSource{Client: s.client, Bucket: s.bucket, Object: storage.ObjectPath(s.exportsPrefix, followersObject)},
		Following: ObjectSource{Client: s.client, Bucket: s.bucket, Object: storage.ObjectPath(s.exportsPrefix, followingObject)},
		Both:      both,
	})
}

// LastResult returns the cached result or resultcache.ErrNotFound.
func (s *Service) LastResult(ctx context.Context) (*resultcache.Entry, error) {
	return s.cache.Load(ctx, resultcache.LastResultKey)
}

// ClearLastResult empties the cache slot.
func (s *Service) ClearLastResult(ctx context.Context) error {
	return s.cache.Delete(ctx, resultcache.LastResultKey)
}

// View returns one direction of the cached result, filtered and sorted.
func (s *Service) View(ctx context.Context, dir Direction, q present.Query) ([]string, *resultcache.Entry, error) {
	entry, err := s.LastResult(ctx)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := pick(entry, dir)
	if err != nil {
		return nil, nil, err
	}
	return present.View(accounts, q), entry, nil
}

// ExportText renders one direction of the cached result as a text download.
func (s *Service) ExportText(ctx context.Context, dir Direction, q present.Query) (string, error) {
	accounts, _, err := s.View(ctx, dir, q)
	if err != nil {
		return "", err
	}
	return present.ExportText(accounts), nil
}

// Publish uploads the text export of one direction to the results folder
// and returns the object name.
func (s *Service) Publish(ctx context.Context, dir Direction, q present.Query) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}
	text, err := s.ExportText(ctx, dir, q)
	if err != nil {
		return "", err
	}

	stamp := time.Now().UTC().Format("20060102T150405Z")
	object := storage.ObjectPath(s.resultsPrefix, stamp+"_"+dir.FileName())
	name, err := storage.PutText(ctx, s.client, s.bucket, object, text)
	if err != nil {
		return "", err
	}

	s.logger.Info("Published result export", zap.String("object", name), zap.String("direction", string(dir)))
	return name, nil
}

func pick(entry *resultcache.Entry, dir Direction) ([]string, error) {
	if dir == DirectionNotFollowedBack {
		if !entry.Both {
			return nil, ErrDirectionUnavailable
		}
		return entry.NotFollowedBack, nil
	}
	return entry.NotFollowingBack, nil
}

func extractRole(data []byte, role extract.Role) (*extract.Extraction, error) {
	x, err := extract.ExtractBytes(data, role)
	if err != nil {
		return nil, err
	}
	if err := extract.RequireUsernames(role, x.Usernames); err != nil {
		return nil, err
	}
	return x, nil
}

func inputInfo(x *extract.Extraction, src Source) InputInfo {
	return InputInfo{
		Role:      x.Role,
		Source:    src.Name(),
		Shape:     x.Shape.String(),
		Usernames: len(x.Usernames),
		Skipped:   x.Skipped,
	}
}
