package service

import "time"

// gulfZone is the fixed UTC+4 zone used for every server-assigned record
// time. Creation and update paths share this single clock so stored
// timestamps never mix conventions.
var gulfZone = time.FixedZone("GST", 4*60*60)

func recordTime() time.Time {
	return time.Now().In(gulfZone)
}
