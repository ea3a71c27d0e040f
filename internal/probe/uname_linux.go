//go:build linux

package probe

import "golang.org/x/sys/unix"

// unameKernelVersion reads the kernel release directly via uname(2).
func unameKernelVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
