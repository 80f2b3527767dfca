package entry

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// Owner resolves the owning user and group names for info. Unresolvable
// ids fall back to their numeric form, and platforms without uid/gid in
// their stat result yield empty strings.
func Owner(info fs.FileInfo) (userName, groupName string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", ""
	}

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	gid := strconv.FormatUint(uint64(st.Gid), 10)
	userName, groupName = uid, gid

	if u, err := user.LookupId(uid); err == nil {
		userName = u.Username
	}
	if g, err := user.LookupGroupId(gid); err == nil {
		groupName = g.Name
	}
	return userName, groupName
}
