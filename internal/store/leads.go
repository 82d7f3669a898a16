package store

import (
	"context"
	"net/url"
	"sync"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
)

// LeadAPI is the slice of the backend client the lead store drives.
type LeadAPI interface {
	ListLeads(ctx context.Context, params url.Values) ([]entity.Lead, error)
	CreateLead(ctx context.Context, input api.LeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, id string, input api.LeadInput) (*entity.Lead, error)
	UpdateLeadStage(ctx context.Context, id, stage string) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// LeadStore caches the last successfully fetched lead list. The cache
// is not authoritative: it mirrors the last server response, patched in
// place by mutations, and is replaced wholesale by the next fetch.
type LeadStore struct {
	mu       sync.Mutex
	api      LeadAPI
	leads    []entity.Lead
	loading  bool
	err      error
	fetchSeq uint64
}

func NewLeadStore(leadAPI LeadAPI) *LeadStore {
	return &LeadStore{api: leadAPI}
}

// Leads returns a copy of the cached list in server order.
func (s *LeadStore) Leads() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *LeadStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *LeadStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch replaces the cache wholesale with the server's list. Each fetch
// gets a monotonically increasing sequence number; a response is
// applied only if no newer fetch was issued meanwhile, so out-of-order
// completions cannot clobber fresher data. A failed fetch records the
// error, clears loading, and leaves the previous list untouched.
func (s *LeadStore) Fetch(ctx context.Context, params url.Values) ([]entity.Lead, error) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	leads, err := s.api.ListLeads(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		// superseded by a newer fetch; discard
		return leads, err
	}
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	s.leads = leads
	return leads, nil
}

// Create posts the new lead and prepends the server's object to the
// cache. No re-fetch.
func (s *LeadStore) Create(ctx context.Context, input api.LeadInput) (*entity.Lead, error) {
	s.begin()
	lead, err := s.api.CreateLead(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.leads = append([]entity.Lead{*lead}, s.leads...)
	return lead, nil
}

// Update replaces the cached entry with the server's returned object.
func (s *LeadStore) Update(ctx context.Context, id string, input api.LeadInput) (*entity.Lead, error) {
	s.begin()
	lead, err := s.api.UpdateLead(ctx, id, input)
	return s.applyReplace(id, lead, err)
}

// UpdateStage changes only the pipeline stage, same cache rule as Update.
func (s *LeadStore) UpdateStage(ctx context.Context, id, stage string) (*entity.Lead, error) {
	s.begin()
	lead, err := s.api.UpdateLeadStage(ctx, id, stage)
	return s.applyReplace(id, lead, err)
}

// Delete removes the entry from the cache once the backend confirms.
func (s *LeadStore) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.api.DeleteLead(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.deleteLocked(id)
	return nil
}

// AddLocal prepends a lead without a network call (optimistic UI).
func (s *LeadStore) AddLocal(lead entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]entity.Lead{lead}, s.leads...)
}

// UpdateLocal patches the cached entry in place without a network call,
// used for cross-page synchronization (e.g. a note saved on the detail
// page patching the list entry).
func (s *LeadStore) UpdateLocal(id string, patch func(*entity.Lead)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			patch(&s.leads[i])
			return
		}
	}
}

// DeleteLocal removes the cached entry without a network call.
func (s *LeadStore) DeleteLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(id)
}

func (s *LeadStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *LeadStore) applyReplace(id string, lead *entity.Lead, err error) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i] = *lead
			break
		}
	}
	return lead, nil
}

func (s *LeadStore) deleteLocked(id string) {
	kept := s.leads[:0]
	for _, l := range s.leads {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.leads = kept
}
