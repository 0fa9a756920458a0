package moqsub

// Announcement notifies subscribers that a publisher namespace became
// available (Active true) or was withdrawn (Active false).
type Announcement struct {
	Namespace []string
	Active    bool
}

// AnnouncementCallback receives namespace announcements. Callbacks run on
// the control stream's reader goroutine and should return quickly.
type AnnouncementCallback func(Announcement)
