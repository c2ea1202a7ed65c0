package entity

import "time"

// Evolution is one session evolution record for a student. NextSession is
// the secondary date the dashboard counts against the coming seven days.
type Evolution struct {
	Base
	StudentID   int64      `db:"student_id"`
	SessionDate time.Time  `db:"session_date"`
	Focus       string     `db:"focus"`
	Progress    string     `db:"progress"`
	PainLevel   int        `db:"pain_level"` // 0-10
	NextSession *time.Time `db:"next_session"`
}
