package catalog

import "hash/fnv"

// Identity is one entry of the demo owner pool. Board inserts and default
// candidates that arrive without an owner get one assigned from here so the
// action lifecycle always has a counterpart to negotiate with.
type Identity struct {
	Name  string
	Email string
	Phone string
}

var identityPool = []Identity{
	{"김하늘", "haneul.kim@example.com", "010-2345-1101"},
	{"이서준", "seojun.lee@example.com", "010-3456-1202"},
	{"박지우", "jiwoo.park@example.com", "010-4567-1303"},
	{"최민서", "minseo.choi@example.com", "010-5678-1404"},
	{"정다은", "daeun.jung@example.com", "010-6789-1505"},
	{"한도윤", "doyun.han@example.com", "010-7890-1606"},
	{"오유진", "yujin.oh@example.com", "010-8901-1707"},
	{"강시우", "siwoo.kang@example.com", "010-9012-1808"},
}

// AssignedOwner deterministically picks an identity for (category, position).
// The same slot always maps to the same identity, so re-seeding a board or
// requesting an action on a default candidate sees a stable owner.
func AssignedOwner(categoryID string, position int) Identity {
	h := fnv.New32a()
	h.Write([]byte(categoryID))
	h.Write([]byte{byte(position), byte(position >> 8)})
	return identityPool[int(h.Sum32())%len(identityPool)]
}
