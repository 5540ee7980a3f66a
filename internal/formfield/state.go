package formfield

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

// Field names a derived output of State that listeners can observe.
type Field int

const (
	FieldTitle Field = iota
	FieldAccessibilityLabel
	FieldColors
	FieldFonts
	FieldSpacing
	FieldHelper
	FieldSecondaryHelper
)

// AllFields returns every observable field.
func AllFields() []Field {
	return []Field{
		FieldTitle,
		FieldAccessibilityLabel,
		FieldColors,
		FieldFonts,
		FieldSpacing,
		FieldHelper,
		FieldSecondaryHelper,
	}
}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAccessibilityLabel:
		return "accessibility_label"
	case FieldColors:
		return "colors"
	case FieldFonts:
		return "fonts"
	case FieldSpacing:
		return "spacing"
	case FieldHelper:
		return "helper"
	case FieldSecondaryHelper:
		return "secondary_helper"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Snapshot is a consistent copy of every derived output and input flag.
type Snapshot struct {
	Title              StyledText
	AccessibilityLabel *string
	Helper             *string
	SecondaryHelper    *string
	Colors             Colors
	Fonts              Fonts
	Spacing            int
	FeedbackState      FeedbackState
	IsRequired         bool
	Backdrop           theme.Color
}

// Change is delivered to listeners once a setter has finished.
type Change struct {
	Field    Field
	Snapshot Snapshot
}

// Listener receives changes of a single field.
type Listener func(Change)

// Options carries the construction inputs of a State besides the theme.
type Options struct {
	FeedbackState      FeedbackState
	Title              *string
	Helper             *string
	IsRequired         bool
	AccessibilityLabel *string
	CounterLength      *int
	CounterLimit       *int

	// RequiredSuffix is used by the default Deriver; ignored when Deriver is set.
	RequiredSuffix string
	Deriver        Deriver
	Logger         ports.Logger
	// Context is passed to the logger, e.g. to carry a correlation ID.
	Context context.Context
}

// State is the form-field view-model.
type State struct {
	theme         theme.Theme
	feedbackState FeedbackState
	title         *string
	isRequired    bool
	customLabel   *string
	helper        *string
	counterLength *int
	counterLimit  *int

	formattedTitle     StyledText
	accessibilityLabel *string
	secondaryHelper    *string
	colors             Colors
	fonts              Fonts
	spacing            int

	deriver   Deriver
	logger    ports.Logger
	logCtx    context.Context
	listeners map[Field][]listenerEntry
	nextID    int

	publishing bool
	pending    []pendingChange
}

type listenerEntry struct {
	id       int
	listener Listener
}

// New creates a State and derives every output once.
func New(th theme.Theme, opts Options) *State {
	deriver := opts.Deriver
	if deriver == nil {
		deriver = NewDeriver(opts.RequiredSuffix)
	}
	logCtx := opts.Context
	if logCtx == nil {
		logCtx = context.Background()
	}

	s := &State{
		theme:         th,
		feedbackState: opts.FeedbackState,
		title:         cloneString(opts.Title),
		isRequired:    opts.IsRequired,
		customLabel:   cloneString(opts.AccessibilityLabel),
		helper:        cloneString(opts.Helper),
		counterLength: cloneInt(opts.CounterLength),
		counterLimit:  cloneInt(opts.CounterLimit),
		deriver:       deriver,
		logger:        opts.Logger,
		logCtx:        logCtx,
		listeners:     make(map[Field][]listenerEntry),
	}

	s.updateColors()
	s.updateFonts()
	s.updateSpacing()
	s.updateTitle()
	s.updateAccessibilityLabel()
	s.updateSecondaryHelper()

	return s
}

// Theme returns the current theme.
func (s *State) Theme() theme.Theme { return s.theme }

// FeedbackState returns the current feedback state.
func (s *State) FeedbackState() FeedbackState { return s.feedbackState }

// IsRequired reports whether the field is required.
func (s *State) IsRequired() bool { return s.isRequired }

// Title returns the formatted title, nil when the field has no title.
func (s *State) Title() StyledText { return s.formattedTitle.Runs() }

// AccessibilityLabel returns the label for assistive technologies.
func (s *State) AccessibilityLabel() *string { return cloneString(s.accessibilityLabel) }

// Helper returns the helper text as supplied.
func (s *State) Helper() *string { return cloneString(s.helper) }

// SecondaryHelper returns the counter text, nil when no counter is shown.
func (s *State) SecondaryHelper() *string { return cloneString(s.secondaryHelper) }

func (s *State) Colors() Colors { return s.colors }

func (s *State) Fonts() Fonts { return s.fonts }

func (s *State) Spacing() int { return s.spacing }

// Snapshot copies the current outputs.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Title:              s.formattedTitle.Runs(),
		AccessibilityLabel: cloneString(s.accessibilityLabel),
		Helper:             cloneString(s.helper),
		SecondaryHelper:    cloneString(s.secondaryHelper),
		Colors:             s.colors,
		Fonts:              s.fonts,
		Spacing:            s.spacing,
		FeedbackState:      s.feedbackState,
		IsRequired:         s.isRequired,
		Backdrop:           s.theme.Colors.Base.Surface,
	}
}

// SetTheme replaces the theme and recomputes colours, fonts, spacing,
// title and accessibility label.
func (s *State) SetTheme(th theme.Theme) {
	s.theme = th
	s.updateColors()
	s.updateFonts()
	s.updateSpacing()
	s.updateTitle()
	s.updateAccessibilityLabel()
	s.publish(FieldColors, FieldFonts, FieldSpacing, FieldTitle, FieldAccessibilityLabel)
}

// SetFeedbackState recomputes the colours when the state actually changes.
func (s *State) SetFeedbackState(state FeedbackState) {
	if state == s.feedbackState {
		return
	}
	s.feedbackState = state
	s.updateColors()
	s.publish(FieldColors)
}

// SetTitle replaces the title text.
func (s *State) SetTitle(title *string) {
	s.title = cloneString(title)
	s.updateTitle()
	s.updateAccessibilityLabel()
	s.publish(FieldTitle, FieldAccessibilityLabel)
}

// SetRequired toggles the required marker when the flag actually changes.
func (s *State) SetRequired(isRequired bool) {
	if isRequired == s.isRequired {
		return
	}
	s.isRequired = isRequired
	s.updateTitle()
	s.updateAccessibilityLabel()
	s.publish(FieldTitle, FieldAccessibilityLabel)
}

// SetAccessibilityLabel sets a custom label that overrides the title.
func (s *State) SetAccessibilityLabel(custom *string) {
	s.customLabel = cloneString(custom)
	s.updateAccessibilityLabel()
	s.publish(FieldAccessibilityLabel)
}

// SetHelper stores the helper text verbatim.
func (s *State) SetHelper(helper *string) {
	s.helper = cloneString(helper)
	s.publish(FieldHelper)
}

// SetCounter updates the counter from the control's current text.
func (s *State) SetCounter(text *string, limit *int) {
	s.SetCounterLength(CounterLength(text), limit)
}

// SetCounterLength updates the counter from an explicit length.
func (s *State) SetCounterLength(length, limit *int) {
	s.counterLength = cloneInt(length)
	s.counterLimit = cloneInt(limit)
	s.updateSecondaryHelper()
	s.publish(FieldSecondaryHelper)
}

// Subscribe registers a listener for one field.
func (s *State) Subscribe(field Field, listener Listener) ports.Subscription {
	if listener == nil {
		return noopSubscription{}
	}
	s.nextID++
	id := s.nextID
	s.listeners[field] = append(s.listeners[field], listenerEntry{id: id, listener: listener})

	return subscription{cancel: func() {
		entries := s.listeners[field]
		for i, entry := range entries {
			if entry.id == id {
				s.listeners[field] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}}
}

func (s *State) updateColors() {
	s.colors = s.deriver.Colors(s.theme, s.feedbackState)
}

func (s *State) updateFonts() {
	s.fonts = s.deriver.Fonts(s.theme)
}

func (s *State) updateSpacing() {
	s.spacing = s.deriver.Spacing(s.theme)
}

func (s *State) updateTitle() {
	s.formattedTitle = s.deriver.Title(s.title, s.isRequired, s.colors, s.fonts)
}

func (s *State) updateAccessibilityLabel() {
	s.accessibilityLabel = s.deriver.AccessibilityLabel(s.title, s.customLabel, s.isRequired)
}

func (s *State) updateSecondaryHelper() {
	s.secondaryHelper = s.deriver.Counter(s.counterLength, s.counterLimit)
}

// publish runs after all recomputation of a setter; listeners therefore
// never observe a partially updated state. A setter called from a listener
// is queued until the current fan-out is done, so every listener receives
// changes in the order they happened.
func (s *State) publish(fields ...Field) {
	if s.logger != nil {
		names := make([]string, len(fields))
		for i, field := range fields {
			names[i] = field.String()
		}
		s.logger.Debug(s.logCtx, "form field updated", "fields", names, "feedback_state", s.feedbackState.String())
	}

	if len(s.listeners) == 0 {
		return
	}
	s.pending = append(s.pending, pendingChange{fields: fields, snapshot: s.Snapshot()})
	if s.publishing {
		return
	}

	s.publishing = true
	defer func() {
		s.publishing = false
		s.pending = nil
	}()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.deliver(next)
	}
}

// pendingChange is one setter's notification, captured when the setter ran.
type pendingChange struct {
	fields   []Field
	snapshot Snapshot
}

// deliver notifies the listeners of one setter. Each listener gets its own
// copy of the snapshot.
func (s *State) deliver(change pendingChange) {
	for _, field := range change.fields {
		entries := append([]listenerEntry(nil), s.listeners[field]...)
		for _, entry := range entries {
			entry.listener(Change{Field: field, Snapshot: change.snapshot.clone()})
		}
	}
}

func (snap Snapshot) clone() Snapshot {
	snap.Title = snap.Title.Runs()
	snap.AccessibilityLabel = cloneString(snap.AccessibilityLabel)
	snap.Helper = cloneString(snap.Helper)
	snap.SecondaryHelper = cloneString(snap.SecondaryHelper)
	return snap
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
