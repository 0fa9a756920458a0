package moqsub

// Location addresses an object within a track by group and object ID.
type Location struct {
	Group  uint64
	Object uint64
}
