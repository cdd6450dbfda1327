package session

import (
	"github.com/studiowebux/editpad/internal/tabs"
	"github.com/studiowebux/editpad/internal/types"
	"go.uber.org/zap"
)

// Store is the persistence the controller writes through
type Store interface {
	LoadTabs() []types.Tab
	SaveTabs(tabs []types.Tab)
	LoadActiveID() string
	SaveActiveID(id string)
}

// Controller owns the active tab and keeps registry, store and surface in
// step
type Controller struct {
	registry *tabs.Registry
	store    Store
	logger   *zap.Logger

	surface   Surface
	activeID  string
	listeners []func(Event)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller. Call Init before use.
func New(registry *tabs.Registry, store Store, opts ...Option) *Controller {
	if registry == nil {
		registry = tabs.NewRegistry(nil)
	}
	c := &Controller{
		registry: registry,
		store:    store,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Init loads the persisted session. An unknown active id is repaired to the
// first tab; an empty collection gets a default tab.
func (c *Controller) Init() {
	stored := c.store.LoadTabs()
	kept := c.registry.Load(stored)
	if kept < len(stored) {
		c.logger.Warn("dropped tab records with missing or duplicate id",
			zap.Int("stored", len(stored)), zap.Int("kept", kept))
	}
	c.activeID = c.store.LoadActiveID()

	if kept == 0 {
		t := c.registry.Create("", "")
		c.activeID = t.ID
		c.store.SaveTabs(c.registry.All())
		c.store.SaveActiveID(c.activeID)
		c.logger.Info("created default tab", zap.String("id", t.ID))
		return
	}

	if c.registry.Index(c.activeID) < 0 {
		first, _ := c.registry.At(0)
		c.logger.Warn("active tab not found, falling back to first tab",
			zap.String("stored", c.activeID), zap.String("id", first.ID))
		c.activeID = first.ID
		c.store.SaveActiveID(c.activeID)
	}

	c.logger.Info("session loaded", zap.Int("tabs", kept), zap.String("active", c.activeID))
}

// Attach binds the editing surface and loads the active tab into it
func (c *Controller) Attach(s Surface) {
	if s == nil {
		return
	}
	c.surface = s
	c.load(c.activeID)
	c.emit(EventReady)
}

// Teardown captures the active tab, persists everything and detaches the
// surface
func (c *Controller) Teardown() {
	if c.surface == nil {
		return
	}
	c.flush()
	c.persist()
	c.surface = nil
}

// Ready reports whether a surface is attached
func (c *Controller) Ready() bool {
	return c.surface != nil
}

// Subscribe registers fn for controller events
func (c *Controller) Subscribe(fn func(Event)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// ActiveID returns the id of the active tab
func (c *Controller) ActiveID() string {
	return c.activeID
}

// Active returns a copy of the active tab record
func (c *Controller) Active() (types.Tab, bool) {
	return c.registry.Find(c.activeID)
}

// Tabs returns the tabs in display order
func (c *Controller) Tabs() []types.Tab {
	return c.registry.All()
}

// Find returns the tab with the given id
func (c *Controller) Find(id string) (types.Tab, bool) {
	return c.registry.Find(id)
}

// Switch makes targetID the active tab. Switching to the active tab or an
// unknown id does nothing.
func (c *Controller) Switch(targetID string) bool {
	if !c.Ready() {
		return false
	}
	if targetID == c.activeID {
		return false
	}
	if c.registry.Index(targetID) < 0 {
		c.logger.Debug("switch to unknown tab ignored", zap.String("id", targetID))
		return false
	}

	c.flush()
	c.store.SaveTabs(c.registry.All())
	c.setActive(targetID)
	c.load(targetID)
	c.emit(EventActiveChanged)
	return true
}

// CreateAndActivate captures the current tab, appends a new one and loads
// it. An empty title gives the default title, derived from content later.
func (c *Controller) CreateAndActivate(title string) (types.Tab, bool) {
	if !c.Ready() {
		return types.Tab{}, false
	}

	c.flush()
	t := c.registry.Create(title, "")
	c.store.SaveTabs(c.registry.All())
	c.setActive(t.ID)
	c.load(t.ID)

	c.logger.Debug("tab created", zap.String("id", t.ID))
	c.emit(EventTabsChanged)
	c.emit(EventActiveChanged)
	return t, true
}

// CloseAndReconcile removes the tab after confirm approves. When the active
// tab goes, the tab now at its position becomes active, else the one before
// it, else the first. Closing the last tab leaves a fresh default tab.
// A nil confirm declines.
func (c *Controller) CloseAndReconcile(id string, confirm Confirmer) bool {
	if !c.Ready() {
		return false
	}
	t, ok := c.registry.Find(id)
	if !ok {
		c.logger.Debug("close of unknown tab ignored", zap.String("id", id))
		return false
	}
	if confirm == nil || !confirm.Confirm(CloseMessage(t.DisplayTitle())) {
		c.logger.Debug("close declined", zap.String("id", id))
		return false
	}

	c.flush()
	idx, _ := c.registry.Remove(id)
	wasActive := id == c.activeID

	switch {
	case c.registry.Len() == 0:
		fresh := c.registry.Create("", "")
		c.activeID = fresh.ID
		c.load(fresh.ID)
	case wasActive:
		next := c.replacementAt(idx)
		c.activeID = next.ID
		c.load(next.ID)
	}

	c.persist()
	c.logger.Info("tab closed", zap.String("id", id), zap.String("active", c.activeID))

	c.emit(EventTabsChanged)
	if wasActive {
		c.emit(EventActiveChanged)
	}
	return true
}

// replacementAt picks the tab now at idx, else idx-1, else the first
func (c *Controller) replacementAt(idx int) types.Tab {
	if t, ok := c.registry.At(idx); ok {
		return t
	}
	if t, ok := c.registry.At(idx - 1); ok {
		return t
	}
	t, _ := c.registry.At(0)
	return t
}

// CaptureActive copies the surface into the active tab and persists the
// collection
func (c *Controller) CaptureActive() bool {
	if !c.Ready() {
		return false
	}
	if !c.flush() {
		return false
	}
	c.store.SaveTabs(c.registry.All())
	return true
}

// Rename sets a manual title and persists it immediately
func (c *Controller) Rename(id, title string) bool {
	if !c.registry.Rename(id, title) {
		c.logger.Debug("rename of unknown tab ignored", zap.String("id", id))
		return false
	}
	c.store.SaveTabs(c.registry.All())
	c.emit(EventTabsChanged)
	return true
}

// flush copies the surface into the active record, deriving the title from
// the first line unless the user set one
func (c *Controller) flush() bool {
	if c.surface == nil {
		return false
	}
	content := c.surface.Content()
	plain := c.surface.PlainText()
	return c.registry.Update(c.activeID, func(t *types.Tab) {
		t.Content = content
		if !t.TitleIsManual {
			t.Title = tabs.AutoTitle(plain)
		}
	})
}

func (c *Controller) load(id string) {
	if c.surface == nil {
		return
	}
	t, ok := c.registry.Find(id)
	if !ok {
		return
	}
	c.surface.SetContent(t.Content)
	c.surface.SetSelection(0)
}

func (c *Controller) setActive(id string) {
	c.activeID = id
	c.store.SaveActiveID(id)
}

func (c *Controller) persist() {
	c.store.SaveTabs(c.registry.All())
	c.store.SaveActiveID(c.activeID)
}

func (c *Controller) emit(kind EventKind) {
	ev := Event{Kind: kind, ActiveID: c.activeID}
	for _, fn := range c.listeners {
		fn(ev)
	}
}
