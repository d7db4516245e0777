// SPDX-License-Identifier: Unlicense OR MIT

package evdev

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/unix"

	"mousegesture.org/io/pointer"
)

// ioctl request encoding of asm-generic/ioctl.h.
const (
	iocWrite = 1
	iocRead  = 2

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func ioc(dir, typ, nr, size uint32) uint {
	return uint(dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift)
}

// EVIOCGNAME(len) and EVIOCGRAB.
func evioCGName(n int) uint { return ioc(iocRead, 'E', 0x06, uint32(n)) }

var evioCGrab = ioc(iocWrite, 'E', 0x90, uint32(unsafe.Sizeof(int32(0))))

// pollTimeout bounds the latency of context cancellation, in
// milliseconds.
const pollTimeout = 100

// Device is an open input event device.
type Device struct {
	fd      int
	path    string
	grabbed bool
	log     *slog.Logger
}

// Open opens the event device at path, such as /dev/input/event3.
func Open(path string, log *slog.Logger) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Device{fd: fd, path: path, log: log}, nil
}

// EventSize returns the size of the kernel's struct input_event.
func EventSize() int {
	return int(unsafe.Sizeof(unix.Timeval{})) + 8
}

// Name returns the device name reported by the kernel.
func (d *Device) Name() (string, error) {
	var buf [256]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), uintptr(evioCGName(len(buf))), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", fmt.Errorf("evdev: %s: name: %w", d.path, errno)
	}
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i]), nil
	}
	return string(buf[:]), nil
}

// Grab takes exclusive access to the device, hiding its events from
// the rest of the system, or releases it.
func (d *Device) Grab(grab bool) error {
	v := 0
	if grab {
		v = 1
	}
	if err := unix.IoctlSetPointerInt(d.fd, evioCGrab, v); err != nil {
		return fmt.Errorf("evdev: %s: grab: %w", d.path, err)
	}
	d.grabbed = grab
	return nil
}

// Run decodes the device events with dec and delivers them to fn until
// ctx is done or the device fails.
func (d *Device) Run(ctx context.Context, dec *Decoder, fn func(pointer.Event)) error {
	buf := make([]byte, 64*EventSize())
	var evs []pointer.Event
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := unix.Poll(fds, pollTimeout)
		switch {
		case err == unix.EINTR:
			continue
		case err != nil:
			return fmt.Errorf("evdev: %s: poll: %w", d.path, err)
		case n == 0:
			continue
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
			return fmt.Errorf("evdev: %s: device gone", d.path)
		}
		n, err = unix.Read(d.fd, buf)
		switch {
		case err == unix.EAGAIN || err == unix.EINTR:
			continue
		case err != nil:
			return fmt.Errorf("evdev: %s: read: %w", d.path, err)
		case n == 0:
			return fmt.Errorf("evdev: %s: end of stream", d.path)
		}
		evs = dec.Feed(evs[:0], buf[:n])
		for _, e := range evs {
			fn(e)
		}
	}
}

// Close releases a grab and closes the device.
func (d *Device) Close() error {
	if d.grabbed {
		if err := d.Grab(false); err != nil {
			d.log.Warn("grab not released", "device", d.path, "err", err)
		}
	}
	return unix.Close(d.fd)
}
