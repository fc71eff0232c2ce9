//go:build !linux

package core

import "os"

func currentIdentity() Identity {
	return Identity(os.Getpid())
}
