package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns the catalog state and keeps it in step with the gateway
type Store struct {
	gateway Gateway
	alerter Alerter
	session SessionStore
	logger  *zap.Logger
	bucket  string
	now     func() time.Time

	mu    sync.RWMutex
	state State
}

// Option configures a Store
type Option func(*Store)

// WithAlerter sets where failures are shown
func WithAlerter(a Alerter) Option {
	return func(s *Store) { s.alerter = a }
}

// WithSession restores and persists the authentication flag
func WithSession(session SessionStore) Option {
	return func(s *Store) { s.session = session }
}

// WithLogger sets the logger for failures and session warnings
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithBucket sets the bucket staged files are uploaded to
func WithBucket(bucket string) Option {
	return func(s *Store) { s.bucket = bucket }
}

// WithClock overrides time.Now for blob names and local updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithView sets the initial view mode
func WithView(view ViewMode) Option {
	return func(s *Store) { s.state.View = view }
}

// NewStore creates an empty store over gateway
func NewStore(gateway Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		logger:  zap.NewNop(),
		bucket:  DefaultBucket,
		now:     time.Now,
		state:   State{View: ViewGrid},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.alerter == nil {
		s.alerter = LogAlerter{Logger: s.logger}
	}

	if s.session != nil {
		authenticated, err := s.session.Load()
		if err != nil {
			s.logger.Warn("failed to restore session", zap.Error(err))
		}
		s.state.IsAuthenticated = authenticated
	}

	return s
}

// Dispatch applies a to the current state
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Visible returns the filtered resources for the current search and category.
// A selected category that no longer exists matches nothing.
func (s *Store) Visible() []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.SelectedCategory != uuid.Nil {
		if _, ok := CategoryByID(s.state.Categories, s.state.SelectedCategory); !ok {
			return []models.Resource{}
		}
	}
	return Visible(s.state.Resources, s.state.SearchTerm, s.state.SelectedCategory)
}

// Resource looks up a resource by id
func (s *Store) Resource(id uuid.UUID) (models.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}

// Category looks up a category by id
func (s *Store) Category(id uuid.UUID) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoryByID(s.state.Categories, id)
}

func (s *Store) categoryKnown(id uuid.UUID) bool {
	_, ok := s.Category(id)
	return ok
}

// fail logs err, shows it to the user and returns it
func (s *Store) fail(err error) error {
	if IsValidation(err) {
		s.logger.Debug("validation failed", zap.Error(err))
	} else {
		s.logger.Error("catalog operation failed", zap.Error(err))
	}
	s.alerter.Alert(err)
	return err
}

// LoadAll replaces the local lists with the gateway's. On failure both lists are left empty.
func (s *Store) LoadAll(ctx context.Context) error {
	s.Dispatch(LoadingSet{Loading: true})
	defer s.Dispatch(LoadingSet{Loading: false})

	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		s.Dispatch(Loaded{})
		return s.fail(fmt.Errorf("failed to load categories: %w", err))
	}

	resources, err := s.gateway.ListResources(ctx)
	if err != nil {
		s.Dispatch(Loaded{})
		return s.fail(fmt.Errorf("failed to load resources: %w", err))
	}

	s.Dispatch(Loaded{Categories: categories, Resources: resources})
	s.logger.Debug("catalog loaded",
		zap.Int("categories", len(categories)),
		zap.Int("resources", len(resources)),
	)
	return nil
}

// AddResource validates the draft, uploads a staged file if the type takes one,
// inserts the record and prepends it to the local list.
func (s *Store) AddResource(ctx context.Context, d ResourceDraft) (*models.Resource, error) {
	candidate := models.Resource{
		Title:       strings.TrimSpace(d.Title),
		Type:        d.Type,
		Description: d.Description,
		CategoryID:  d.CategoryID,
	}
	if d.Type == models.ResourceTypeLink {
		url := strings.TrimSpace(d.URL)
		candidate.URL = &url
	}
	file := d.File
	if !d.Type.HasUpload() {
		file = nil
	}

	if err := validateResource(candidate, file, false, s.categoryKnown); err != nil {
		return nil, s.fail(err)
	}

	create := models.ResourceCreate{
		Title:       candidate.Title,
		Type:        candidate.Type,
		URL:         candidate.URL,
		Description: candidate.Description,
		CategoryID:  candidate.CategoryID,
		Tags:        utils.CleanTags(d.Tags),
	}

	if file != nil {
		url, err := s.upload(ctx, file)
		if err != nil {
			return nil, s.fail(err)
		}
		name, size := file.Name, file.Size
		create.URL = &url
		create.FileName = &name
		create.FileSize = &size
	}

	created, err := s.gateway.InsertResource(ctx, create)
	if err != nil {
		return nil, s.fail(fmt.Errorf("failed to save resource: %w", err))
	}

	s.Dispatch(ResourceAdded{Resource: *created})
	return created, nil
}

// UpdateResource sends the patch and merges it into the local record.
// The gateway's row is not read back.
func (s *Store) UpdateResource(ctx context.Context, id uuid.UUID, patch ResourcePatch) error {
	current, ok := s.Resource(id)
	if !ok {
		return s.fail(fmt.Errorf("resource %s %w", id, ErrNotFound))
	}

	update := patch.ResourceUpdate
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		update.Title = &title
	}
	if update.Tags != nil {
		tags := utils.CleanTags(*update.Tags)
		update.Tags = &tags
	}

	merged := update.Apply(current)
	file := patch.File
	if !merged.Type.HasUpload() {
		file = nil
	}

	var known func(uuid.UUID) bool
	if update.CategoryID != nil {
		known = s.categoryKnown
	}
	if err := validateResource(merged, file, true, known); err != nil {
		return s.fail(err)
	}

	if file != nil {
		url, err := s.upload(ctx, file)
		if err != nil {
			return s.fail(err)
		}
		name, size := file.Name, file.Size
		update.URL = &url
		update.FileName = &name
		update.FileSize = &size
	}

	if update.IsEmpty() {
		return nil
	}

	if err := s.gateway.UpdateResource(ctx, id, update); err != nil {
		return s.fail(fmt.Errorf("failed to update resource: %w", err))
	}

	patched := update.Apply(current)
	patched.UpdatedAt = s.now()
	s.Dispatch(ResourcePatched{Resource: patched})
	return nil
}

// DeleteResource deletes remotely, then locally
func (s *Store) DeleteResource(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteResource(ctx, id); err != nil {
		return s.fail(fmt.Errorf("failed to delete resource: %w", err))
	}
	s.Dispatch(ResourceRemoved{ID: id})
	return nil
}

// AddCategory validates the draft, inserts it and appends it to the local list
func (s *Store) AddCategory(ctx context.Context, d CategoryDraft) (*models.Category, error) {
	create := d.Create()
	candidate := models.Category{Name: create.Name, Color: create.Color, ResourceType: create.ResourceType}
	if err := validateCategory(candidate); err != nil {
		return nil, s.fail(err)
	}

	created, err := s.gateway.InsertCategory(ctx, create)
	if err != nil {
		return nil, s.fail(fmt.Errorf("failed to save category: %w", err))
	}

	s.Dispatch(CategoryAdded{Category: *created})
	return created, nil
}

// UpdateCategory sends the update and merges it into the local record
func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, update models.CategoryUpdate) error {
	current, ok := s.Category(id)
	if !ok {
		return s.fail(fmt.Errorf("category %s %w", id, ErrNotFound))
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	merged := update.Apply(current)
	if err := validateCategory(merged); err != nil {
		return s.fail(err)
	}
	if update.IsEmpty() {
		return nil
	}

	if err := s.gateway.UpdateCategory(ctx, id, update); err != nil {
		return s.fail(fmt.Errorf("failed to update category: %w", err))
	}

	s.Dispatch(CategoryPatched{Category: merged})
	return nil
}

// DeleteCategory deletes remotely, then locally.
// Resources referencing the category keep the stale id.
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteCategory(ctx, id); err != nil {
		return s.fail(fmt.Errorf("failed to delete category: %w", err))
	}
	s.Dispatch(CategoryRemoved{ID: id})
	return nil
}

// SetSearchTerm sets the free-text filter
func (s *Store) SetSearchTerm(term string) {
	s.Dispatch(SearchTermSet{Term: term})
}

// SetSelectedCategory filters by id; uuid.Nil clears the filter
func (s *Store) SetSelectedCategory(id uuid.UUID) {
	s.Dispatch(CategorySelected{ID: id})
}

// SetView switches between grid and list; unknown modes are rejected
func (s *Store) SetView(view ViewMode) error {
	if _, err := ParseViewMode(string(view)); err != nil {
		return err
	}
	s.Dispatch(ViewSet{View: view})
	return nil
}

// Login turns on editing. It grants nothing on the gateway.
func (s *Store) Login() error {
	return s.setAuth(true)
}

// Logout turns editing off
func (s *Store) Logout() error {
	return s.setAuth(false)
}

func (s *Store) setAuth(authenticated bool) error {
	s.Dispatch(AuthSet{Authenticated: authenticated})
	if s.session == nil {
		return nil
	}
	if err := s.session.Save(authenticated); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) upload(ctx context.Context, f *StagedFile) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	name := GenerateObjectName(f.Name, s.now())
	url, err := s.gateway.UploadBlob(ctx, s.bucket, name, rc, f.Size)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}
	s.logger.Debug("uploaded file", zap.String("name", f.Name), zap.String("object", name))
	return url, nil
}
