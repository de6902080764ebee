package digestindex

import "errors"

// ErrDuplicateDigest is returned by Insert when the digest is already
// recorded. The import pipeline always checks Exists inside its critical
// section before inserting, so this error indicates a locking or logic
// defect rather than an ordinary duplicate file.
var ErrDuplicateDigest = errors.New("digest already recorded")
