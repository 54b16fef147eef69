// Package service reports how the inputbox process is being run, in
// particular whether it was started by a systemd user manager.
package service

import (
	"os"

	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"
)

// UnitName is the systemd user unit inputbox is installed as
const UnitName = "inputbox.service"

// maxDepth bounds the parent walk
const maxDepth = 32

// Ancestor is one process in the parent chain
type Ancestor struct {
	PID  int32
	Name string
}

// Info describes the running process
type Info struct {
	PID          int32
	Ancestors    []Ancestor
	UnderSystemd bool
	Platform     string
	Hostname     string
}

type lookupFunc func(pid int32) (name string, ppid int32, err error)

func lookupProcess(pid int32) (string, int32, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", 0, err
	}
	name, err := p.Name()
	if err != nil {
		return "", 0, err
	}
	ppid, err := p.Ppid()
	if err != nil {
		return name, 0, err
	}
	return name, ppid, nil
}

// Detect inspects the current process. Lookup failures are logged and
// produce a shorter ancestor chain rather than an error.
func Detect() Info {
	logger := logging.GetLogger("service")

	info := Info{PID: int32(os.Getpid())}
	info.Ancestors = walk(info.PID, lookupProcess)
	info.UnderSystemd = os.Getenv("INVOCATION_ID") != "" || hasUserManager(info.Ancestors)

	if h, err := host.Info(); err == nil {
		info.Platform = h.Platform
		info.Hostname = h.Hostname
	} else {
		logger.Debug().Err(err).Msg("Host info unavailable")
	}

	logger.Debug().
		Bool("underSystemd", info.UnderSystemd).
		Int("depth", len(info.Ancestors)).
		Msg("Service detection complete")
	return info
}

// walk follows parent PIDs from pid up to init
func walk(pid int32, lookup lookupFunc) []Ancestor {
	logger := logging.GetLogger("service")

	_, ppid, err := lookup(pid)
	if err != nil {
		logger.Debug().Err(err).Int32("pid", pid).Msg("Cannot inspect process")
		return nil
	}

	var chain []Ancestor
	seen := map[int32]bool{pid: true}
	for depth := 0; depth < maxDepth && ppid > 0 && !seen[ppid]; depth++ {
		seen[ppid] = true
		name, next, err := lookup(ppid)
		if err != nil {
			logger.Debug().Err(err).Int32("pid", ppid).Msg("Cannot inspect parent process")
			break
		}
		chain = append(chain, Ancestor{PID: ppid, Name: name})
		ppid = next
	}
	return chain
}

// hasUserManager reports whether a systemd instance other than PID 1 is an
// ancestor. PID 1 is the system manager and parents every process.
func hasUserManager(chain []Ancestor) bool {
	for _, a := range chain {
		if a.Name == "systemd" && a.PID != 1 {
			return true
		}
	}
	return false
}
