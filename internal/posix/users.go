// Copyright 2026 The Strada Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posix

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"strada-lang/runtime/internal/value"
)

// GetpwNam and GetpwUid both return {name, passwd, uid, gid, gecos, dir,
// shell} per spec.md §4.12. Go's os/user package doesn't expose the
// encrypted-password field from the real passwd database (nor does any
// portable Go API — reading it requires parsing /etc/shadow with root,
// out of scope here), so passwd is always returned as the conventional
// placeholder "x", matching how every modern shadow-password system
// already answers getpwnam's passwd field in practice.
//
// A lookup that finds no matching entry is not a system error — spec.md
// §7 names "any syscall wrapper that cannot produce its intended
// result" (its own example being stat of a missing path, alongside
// gethostbyname of an unresolved host) as returning Undef, tested via
// defined(). GetpwNam/GetpwUid apply that same rule: os/user reports a
// missing user via a distinct *user.UnknownUserError/
// *user.UnknownUserIdError, which is distinguished from a genuine
// lookup failure (e.g. a broken NSS configuration) before deciding
// between Undef and a real error.
func GetpwNam(name string) (*value.Value, error) {
	u, err := user.Lookup(name)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: getpwnam %q: %w", name, err)
	}
	return userToHash(u), nil
}

// GetpwUid looks up by numeric uid.
func GetpwUid(uid int) (*value.Value, error) {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		var unknown user.UnknownUserIdError
		if errors.As(err, &unknown) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: getpwuid %d: %w", uid, err)
	}
	return userToHash(u), nil
}

func userToHash(u *user.User) *value.Value {
	h := value.NewHash()
	d := h.Hash()
	d.Set("name", value.NewStr([]byte(u.Username)))
	d.Set("passwd", value.NewStr([]byte("x")))
	uid, _ := strconv.Atoi(u.Uid)
	gid, _ := strconv.Atoi(u.Gid)
	d.Set("uid", value.NewInt(int64(uid)))
	d.Set("gid", value.NewInt(int64(gid)))
	d.Set("gecos", value.NewStr([]byte(u.Name)))
	d.Set("dir", value.NewStr([]byte(u.HomeDir)))
	d.Set("shell", value.NewStr([]byte(loginShell())))
	return h
}

// loginShell is a best-effort placeholder: os/user does not expose the
// shell field at all (it isn't part of any struct passwd abstraction Go
// exposes portably), so this returns the conventional fallback a
// misconfigured or minimal system would itself report.
func loginShell() string { return "/bin/sh" }

// GetgrNam and GetgrGid return {name, passwd, gid, members: [..]} per
// spec.md §4.12. os/user.LookupGroup doesn't expose the group's member
// list either, so members is always an empty Array — documented as a
// known contract gap rather than silently fabricated data. A missing
// group, like a missing user above, is Undef rather than an error.
func GetgrNam(name string) (*value.Value, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		var unknown user.UnknownGroupError
		if errors.As(err, &unknown) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: getgrnam %q: %w", name, err)
	}
	return groupToHash(g), nil
}

func GetgrGid(gid int) (*value.Value, error) {
	g, err := user.LookupGroupId(strconv.Itoa(gid))
	if err != nil {
		var unknown user.UnknownGroupIdError
		if errors.As(err, &unknown) {
			return value.NewUndef(), nil
		}
		return nil, fmt.Errorf("strada/posix: getgrgid %d: %w", gid, err)
	}
	return groupToHash(g), nil
}

func groupToHash(g *user.Group) *value.Value {
	h := value.NewHash()
	d := h.Hash()
	d.Set("name", value.NewStr([]byte(g.Name)))
	d.Set("passwd", value.NewStr([]byte("x")))
	gid, _ := strconv.Atoi(g.Gid)
	d.Set("gid", value.NewInt(int64(gid)))
	d.Set("members", value.NewArray())
	return h
}
