//go:build linux

package core

import "golang.org/x/sys/unix"

func currentIdentity() Identity {
	return Identity(unix.Gettid())
}
