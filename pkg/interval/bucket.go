package interval

import (
	"time"
)

// BucketTime floors a timestamp onto the f-wide grid anchored at the Unix
// epoch, so interval_start <= ts < interval_start + f. For any frequency
// that divides a day this coincides with midnight-of-day alignment, which
// keeps buckets aligned across instruments and across engine runs.
//
// The frequency must have passed Validate; BucketTime itself performs no
// checks.
func (f Frequency) BucketTime(ts time.Time) time.Time {
	sec := ts.Unix()
	rem := sec % int64(f)
	if rem < 0 {
		rem += int64(f)
	}
	return time.Unix(sec-rem, 0).In(ts.Location())
}

// BucketRange returns the half-open [start, end) bounds of the bucket
// containing ts.
func (f Frequency) BucketRange(ts time.Time) (start, end time.Time) {
	start = f.BucketTime(ts)
	end = start.Add(f.Duration())
	return start, end
}

// IsInBucket reports whether two timestamps fall into the same bucket.
func (f Frequency) IsInBucket(a, b time.Time) bool {
	return f.BucketTime(a).Equal(f.BucketTime(b))
}
