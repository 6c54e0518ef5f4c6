package gate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// HostEnvironment implements Environment for the machine the process runs
// on. Family is derived from the build target, Status probes write access
// to the storage root, and Request asks for consent on the terminal.
type HostEnvironment struct {
	// Root is the storage root whose writability represents "permission".
	Root string

	// In and Out carry the interactive consent prompt. Defaults to
	// stdin/stderr when nil.
	In  io.Reader
	Out io.Writer
}

// Family reports the host platform family. Desktop and server builds are
// always FamilyOther; the mobile families only apply to gomobile builds.
func (h *HostEnvironment) Family() Family {
	switch runtime.GOOS {
	case "android":
		return FamilyAndroid
	case "ios":
		return FamilyIOS
	default:
		return FamilyOther
	}
}

// Version reports the OS version. Unknown on desktop hosts.
func (h *HostEnvironment) Version() int {
	return 0
}

// Status probes whether the storage root is writable by this process.
func (h *HostEnvironment) Status(ctx context.Context) (Status, error) {
	if h.Root == "" {
		return StatusDenied, nil
	}
	if err := unix.Access(h.Root, unix.W_OK); err != nil {
		if os.IsNotExist(err) {
			// Root will be created on Initialize; check the parent instead.
			return h.parentStatus()
		}
		return StatusDenied, nil
	}
	return StatusGranted, nil
}

func (h *HostEnvironment) parentStatus() (Status, error) {
	dir := h.Root
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return StatusDenied, nil
		}
		dir = parent
		if _, err := os.Stat(dir); err == nil {
			if unix.Access(dir, unix.W_OK) == nil {
				return StatusGranted, nil
			}
			return StatusDenied, nil
		}
	}
}

// Request asks the user for consent on the terminal. It blocks until the
// user answers or ctx is done.
func (h *HostEnvironment) Request(ctx context.Context) (Status, error) {
	in := h.In
	if in == nil {
		in = os.Stdin
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	fmt.Fprintf(out, "inkwell needs access to %s. Allow? [y/N] ", h.Root)

	type answer struct {
		text string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		ch <- answer{text: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return StatusDenied, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.text == "" {
			return StatusDenied, nil
		}
		switch strings.ToLower(strings.TrimSpace(a.text)) {
		case "y", "yes":
			return StatusGranted, nil
		default:
			return StatusDenied, nil
		}
	}
}

var _ Environment = (*HostEnvironment)(nil)
