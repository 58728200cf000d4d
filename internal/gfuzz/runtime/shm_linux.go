//go:build linux

package runtime

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// NewSharedStateMap creates (or attaches to, if id is nonzero) a POSIX
// SysV shared-memory region of size*4 bytes and wraps it as a StateMap,
// backing the live state map shared between the instrumented target and
// the fuzzer (spec.md §5 Resource policy, §6.1 GFUZZ_SHM_ID).
//
// id == 0 requests a freshly allocated segment (the fuzzer's role,
// creating the region before forking the target); id != 0 attaches to an
// existing segment created by a prior call (the target's role, reading
// GFUZZ_SHM_ID from the environment). The returned shmID should be
// published via GFUZZ_SHM_ID for the target to attach to.
func NewSharedStateMap(size int, id int) (_ StateMap, shmID int, err error) {
	if err := validateMapSize(size); err != nil {
		return nil, 0, err
	}
	bytes := size * 4

	shmid := id
	if shmid == 0 {
		shmid, err = unix.SysvShmGet(unix.IPC_PRIVATE, bytes, unix.IPC_CREAT|0o600)
		if err != nil {
			return nil, 0, fmt.Errorf("runtime: shmget failed: %w", err)
		}
	}

	addr, err := unix.SysvShmAttach(shmid, 0, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("runtime: shmat failed: %w", err)
	}

	slots := unsafe.Slice((*uint32)(unsafe.Pointer(&addr[0])), size)

	m := &sliceStateMap{
		slots: slots,
		close: func() error {
			if err := unix.SysvShmDetach(addr); err != nil {
				return fmt.Errorf("runtime: shmdt failed: %w", err)
			}
			if id == 0 {
				// We created the segment; mark it for destruction once
				// the last attacher detaches (the fuzzer's teardown
				// responsibility per spec.md §5).
				_, _ = unix.SysvShmCtl(shmid, unix.IPC_RMID, nil)
			}
			return nil
		},
	}
	return m, shmid, nil
}
