package repositories

import "time"

// inZone puts t back in the zone it was stamped in. The local zone is
// preferred when it matches, so restored entries render like fresh ones.
func inZone(t time.Time, name string, offset int) time.Time {
	if offset == 0 && (name == "" || name == "UTC") {
		return t.UTC()
	}
	if local := t.In(time.Local); sameZone(local, name, offset) {
		return local
	}
	return t.In(time.FixedZone(name, offset))
}

func sameZone(t time.Time, name string, offset int) bool {
	n, o := t.Zone()
	return n == name && o == offset
}
