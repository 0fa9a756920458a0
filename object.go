package moqsub

// ObjectStatus marks objects that carry no payload.
type ObjectStatus uint64

const (
	ObjectStatusNormal             ObjectStatus = 0x00
	ObjectStatusObjectDoesNotExist ObjectStatus = 0x01
	ObjectStatusEndOfGroup         ObjectStatus = 0x03
	ObjectStatusEndOfTrack         ObjectStatus = 0x04
)

// Object is a single media object received on a subscribed track.
type Object struct {
	TrackAlias        uint64
	GroupID           uint64
	SubgroupID        uint64
	ObjectID          uint64
	PublisherPriority uint8
	Extensions        []byte
	Status            ObjectStatus
	Payload           []byte
}

// ObjectCallback receives objects for a subscribed track. Callbacks run on
// the stream's reader goroutine; a panicking callback is logged and does
// not interrupt delivery to the remaining callbacks.
type ObjectCallback func(Object)
