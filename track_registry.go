package moqsub

import (
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// trackEntry is the registry record for one subscribed track. The identity
// fields are immutable after creation; callbacks are guarded by the
// registry mutex.
type trackEntry struct {
	namespace []string
	name      string
	alias     uint64
	requestID uint64
	onDone    func(statusCode uint64, reason string)

	callbacks      []registeredCallback
	nextCallbackID uint64
}

type registeredCallback struct {
	id uint64
	fn ObjectCallback
}

type trackKey struct {
	namespace string
	name      string
}

func newTrackKey(namespace []string, name string) trackKey {
	return trackKey{
		namespace: strings.Join(namespace, "/"),
		name:      name,
	}
}

// trackRegistry maps track aliases and (namespace, name) pairs to the same
// records. The subscription logic writes it, the data stream demultiplexer
// reads it.
type trackRegistry struct {
	logger *slog.Logger

	mu        sync.Mutex
	nextAlias uint64
	byAlias   map[uint64]*trackEntry
	byName    map[trackKey]*trackEntry
	byRequest map[uint64]*trackEntry
}

func newTrackRegistry(logger *slog.Logger) *trackRegistry {
	return &trackRegistry{
		logger:    componentLogger(logger, "MOQ_TRACK_REGISTRY"),
		nextAlias: 1,
		byAlias:   map[uint64]*trackEntry{},
		byName:    map[trackKey]*trackEntry{},
		byRequest: map[uint64]*trackEntry{},
	}
}

// register creates a record with a locally allocated alias. Registering
// the same track again returns the existing record unchanged.
func (r *trackRegistry) register(namespace []string, name string, requestID uint64) *trackEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newTrackKey(namespace, name)
	if e, ok := r.byName[key]; ok {
		return e
	}
	e := &trackEntry{
		namespace: namespace,
		name:      name,
		alias:     r.nextAlias,
		requestID: requestID,
	}
	r.nextAlias++
	r.insertLocked(key, e)
	return e
}

// adopt creates a record under the publisher-assigned alias carried in
// SubscribeOk. Adopting the same track again returns the existing record.
// An alias already bound to a different track is a conflict and reported
// with ok == false. The alias counter is kept ahead of adopted aliases so
// locally allocated ones cannot collide.
func (r *trackRegistry) adopt(namespace []string, name string, alias, requestID uint64, onDone func(uint64, string)) (*trackEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newTrackKey(namespace, name)
	if e, ok := r.byName[key]; ok {
		return e, true
	}
	if _, ok := r.byAlias[alias]; ok {
		return nil, false
	}
	e := &trackEntry{
		namespace: namespace,
		name:      name,
		alias:     alias,
		requestID: requestID,
		onDone:    onDone,
	}
	if alias >= r.nextAlias {
		r.nextAlias = alias + 1
	}
	r.insertLocked(key, e)
	return e, true
}

func (r *trackRegistry) insertLocked(key trackKey, e *trackEntry) {
	r.byAlias[e.alias] = e
	r.byName[key] = e
	r.byRequest[e.requestID] = e
}

// addCallback appends fn to the track's observer list and returns an ID
// for removal. Unknown aliases are logged and reported with ok == false.
func (r *trackRegistry) addCallback(alias uint64, fn ObjectCallback) (id uint64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byAlias[alias]
	if !ok {
		r.logger.Warn("addCallback for unknown track alias", "track_alias", alias)
		return 0, false
	}
	id = e.nextCallbackID
	e.nextCallbackID++
	e.callbacks = append(e.callbacks, registeredCallback{id: id, fn: fn})
	return id, true
}

func (r *trackRegistry) removeCallback(alias, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byAlias[alias]
	if !ok {
		r.logger.Warn("removeCallback for unknown track alias", "track_alias", alias)
		return
	}
	for i, cb := range e.callbacks {
		if cb.id == id {
			e.callbacks = append(e.callbacks[:i], e.callbacks[i+1:]...)
			return
		}
	}
}

func (r *trackRegistry) removeAllCallbacks(alias uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byAlias[alias]
	if !ok {
		r.logger.Warn("removeAllCallbacks for unknown track alias", "track_alias", alias)
		return
	}
	e.callbacks = nil
}

// callbacksFor returns a snapshot of the track's observer list in
// registration order, or nil if the alias is unknown or has no observers.
func (r *trackRegistry) callbacksFor(alias uint64) []ObjectCallback {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byAlias[alias]
	if !ok || len(e.callbacks) == 0 {
		return nil
	}
	res := make([]ObjectCallback, 0, len(e.callbacks))
	for _, cb := range e.callbacks {
		res = append(res, cb.fn)
	}
	return res
}

func (r *trackRegistry) entryByAlias(alias uint64) (*trackEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byAlias[alias]
	return e, ok
}

func (r *trackRegistry) entryByRequestID(requestID uint64) (*trackEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byRequest[requestID]
	return e, ok
}

func (r *trackRegistry) entryByName(namespace []string, name string) (*trackEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byName[newTrackKey(namespace, name)]
	return e, ok
}

// clear drops all records and resets the alias counter. Only called on
// session teardown, records survive unsubscribes.
func (r *trackRegistry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.byAlias) > 0 {
		r.logger.Debug("clearing track registry", "track_aliases", maps.Keys(r.byAlias))
	}
	r.nextAlias = 1
	maps.Clear(r.byAlias)
	maps.Clear(r.byName)
	maps.Clear(r.byRequest)
}
