package core

import "strconv"

// Identity is the small integer naming a calling thread or job
type Identity uint32

// NoFilter is the unset filter identity. A filter equal to NoFilter
// lets every identity through.
const NoFilter = ^Identity(0)

// String returns the decimal form of the identity
func (i Identity) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// IdentitySource returns the identity of the caller
type IdentitySource func() Identity

// CurrentIdentity returns the identity of the calling thread. On
// platforms without thread ids it falls back to the process id.
func CurrentIdentity() Identity {
	return currentIdentity()
}
