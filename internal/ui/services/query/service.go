package query

import (
	"context"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"typeahead/internal/domain"
	"typeahead/internal/logging"
	"typeahead/internal/sequencer"
	"typeahead/internal/source"
	"typeahead/internal/ui/services/events"
	"typeahead/internal/ui/services/navigation"
)

// Service issues resolution requests for one instance and makes sure only
// the newest one ever reaches the navigation state machine
type Service struct {
	instanceID string
	token      string
	resolver   source.Resolver
	nav        *navigation.Service
	bus        events.EventBus
	opts       Options
	ctx        context.Context

	seq       sequencer.Sequencer
	lastQuery string
}

// NewService creates a query controller bound to nav
func NewService(instanceID string, resolver source.Resolver, nav *navigation.Service, bus events.EventBus, opts Options) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		instanceID: instanceID,
		token:      uuid.NewString(),
		resolver:   resolver,
		nav:        nav,
		bus:        bus,
		opts:       opts,
		ctx:        context.Background(),
	}
}

// SetContext sets the context resolutions run under
func (s *Service) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Token returns the value stamped on every ResultsMsg this service issues
func (s *Service) Token() string {
	return s.token
}

// LastQuery returns the text of the most recent OnQuery call
func (s *Service) LastQuery() string {
	return s.lastQuery
}

// Pending returns the newest issued sequence number
func (s *Service) Pending() uint64 {
	return s.seq.Current()
}

// OnQuery reacts to new input text. Text shorter than MinLength closes the
// list and issues nothing; otherwise a command resolving text is returned.
func (s *Service) OnQuery(text string) tea.Cmd {
	s.lastQuery = text

	if utf8.RuneCountInString(text) < s.opts.MinLength {
		// Results still in flight belong to longer text and must not reopen
		s.seq.Invalidate()
		s.nav.Close()
		return nil
	}

	req := domain.QueryRequest{Seq: s.seq.Next(), Text: text}
	s.bus.Publish(IssuedEvent{Request: req})
	logging.Debug("query issued", "instance", s.instanceID, "seq", req.Seq, "query", text)

	ctx := s.ctx
	resolver := s.resolver
	id, token := s.instanceID, s.token
	return func() tea.Msg {
		items := resolver.Resolve(ctx, req.Text)
		return ResultsMsg{
			InstanceID: id,
			Token:      token,
			Seq:        req.Seq,
			Query:      req.Text,
			Items:      items,
		}
	}
}

// OnFocus shows the unfiltered set when MinLength is 0. Text already in
// the input is ignored.
func (s *Service) OnFocus() tea.Cmd {
	if s.opts.MinLength != 0 {
		return nil
	}
	return s.OnQuery("")
}

// Apply hands a settled result to navigation if it is still the newest
// request of this service. Stale or foreign results are dropped without
// touching any state.
// Returns whether the list is open afterwards.
func (s *Service) Apply(msg ResultsMsg) bool {
	req := domain.QueryRequest{Seq: msg.Seq, Text: msg.Query}
	if msg.Token != s.token {
		// Issued by an earlier instance bound to the same id
		logging.Debug("foreign results dropped", "instance", s.instanceID, "seq", msg.Seq)
		return false
	}
	if !s.seq.IsCurrent(msg.Seq) {
		logging.Debug("stale results dropped", "instance", s.instanceID, "seq", msg.Seq, "current", s.seq.Current())
		s.bus.Publish(DiscardedEvent{Request: req, Current: s.seq.Current()})
		return false
	}

	items := msg.Items
	if s.opts.MaxResults > 0 && len(items) > s.opts.MaxResults {
		items = items[:s.opts.MaxResults]
	}

	opened := s.nav.Open(items)
	s.bus.Publish(AppliedEvent{Request: req, Count: len(items), Opened: opened})
	return opened
}

// Invalidate makes every in-flight request stale
func (s *Service) Invalidate() {
	s.seq.Invalidate()
}
