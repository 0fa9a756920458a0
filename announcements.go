package moqsub

import (
	"log/slog"
	"sync"

	"github.com/moqlive/moqsub/internal/container"
)

// announcementSet holds namespace-prefix subscriptions for announcement
// callbacks. An empty prefix matches every namespace.
type announcementSet struct {
	logger *slog.Logger

	mu     sync.Mutex
	nextID uint64
	tree   *container.Trie[string, AnnouncementCallback]
}

func newAnnouncementSet(logger *slog.Logger) *announcementSet {
	return &announcementSet{
		logger: componentLogger(logger, "MOQ_ANNOUNCEMENTS"),
		tree:   container.NewTrie[string, AnnouncementCallback](),
	}
}

// add registers fn for namespaces under prefix and returns a function that
// removes the registration again.
func (a *announcementSet) add(prefix []string, fn AnnouncementCallback) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.tree.Put(prefix, id, fn)
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			a.tree.Remove(prefix, id)
			a.mu.Unlock()
		})
	}
}

// fanOut delivers the announcement to every callback registered for a
// prefix of its namespace. Callbacks run on the caller's goroutine but
// outside the set's lock, and panics are contained per callback.
func (a *announcementSet) fanOut(announcement Announcement) {
	a.mu.Lock()
	callbacks := a.tree.CollectPrefixes(announcement.Namespace)
	a.mu.Unlock()

	for _, fn := range callbacks {
		a.invoke(fn, announcement)
	}
}

func (a *announcementSet) invoke(fn AnnouncementCallback, announcement Announcement) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("announcement callback panicked", "error", r)
		}
	}()
	fn(announcement)
}
