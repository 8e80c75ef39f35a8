// Package parse isolates the text formats of the macOS utilities this tool
// shells out to. The formats are version-fragile, so every consumer goes
// through one of these functions instead of splitting raw output inline.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HardwarePort is one block of `networksetup -listallhardwareports` output.
type HardwarePort struct {
	Name   string
	Device string
	MAC    string
}

// HardwarePorts parses `networksetup -listallhardwareports`.
func HardwarePorts(out string) []HardwarePort {
	var ports []HardwarePort
	var cur *HardwarePort
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Hardware Port:"):
			if cur != nil {
				ports = append(ports, *cur)
			}
			cur = &HardwarePort{Name: strings.TrimSpace(strings.TrimPrefix(line, "Hardware Port:"))}
		case strings.HasPrefix(line, "Device:") && cur != nil:
			cur.Device = strings.TrimSpace(strings.TrimPrefix(line, "Device:"))
		case strings.HasPrefix(line, "Ethernet Address:") && cur != nil:
			cur.MAC = strings.TrimSpace(strings.TrimPrefix(line, "Ethernet Address:"))
		}
	}
	if cur != nil {
		ports = append(ports, *cur)
	}
	return ports
}

// AirportPower parses `networksetup -getairportpower <dev>` into an on/off state.
func AirportPower(out string) (bool, error) {
	line := strings.TrimSpace(out)
	switch {
	case strings.HasSuffix(line, ": On"):
		return true, nil
	case strings.HasSuffix(line, ": Off"):
		return false, nil
	}
	return false, fmt.Errorf("unrecognized airport power output: %q", line)
}

// CurrentSSID parses `networksetup -getairportnetwork <dev>`. An empty name
// with a nil error means the machine is not associated with any network.
func CurrentSSID(out string) (string, error) {
	line := strings.TrimSpace(out)
	if strings.Contains(line, "not associated") {
		return "", nil
	}
	if _, name, ok := strings.Cut(line, "Current Wi-Fi Network:"); ok {
		return strings.TrimSpace(name), nil
	}
	return "", fmt.Errorf("unrecognized airport network output: %q", line)
}

// MemoryStats is a summary of `vm_stat` output, in megabytes.
type MemoryStats struct {
	PageSize     int64
	FreeMB       int64
	ActiveMB     int64
	InactiveMB   int64
	WiredMB      int64
	CompressedMB int64
}

// VMStat parses the page counts out of `vm_stat`.
func VMStat(out string) (*MemoryStats, error) {
	stats := &MemoryStats{PageSize: 4096}
	lines := strings.Split(out, "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty vm_stat output")
	}
	if _, rest, ok := strings.Cut(lines[0], "page size of"); ok {
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			if size, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
				stats.PageSize = size
			}
		}
	}
	pages := func(label string) int64 {
		for _, line := range lines {
			if !strings.HasPrefix(strings.TrimSpace(line), label) {
				continue
			}
			_, val, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			val = strings.TrimSuffix(strings.TrimSpace(val), ".")
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0
			}
			return n
		}
		return 0
	}
	toMB := func(n int64) int64 { return n * stats.PageSize / (1024 * 1024) }
	stats.FreeMB = toMB(pages("Pages free"))
	stats.ActiveMB = toMB(pages("Pages active"))
	stats.InactiveMB = toMB(pages("Pages inactive"))
	stats.WiredMB = toMB(pages("Pages wired down"))
	stats.CompressedMB = toMB(pages("Pages occupied by compressor"))
	return stats, nil
}

// BatteryStatus is a summary of one battery line from `pmset -g batt`.
type BatteryStatus struct {
	Percent   int
	State     string
	Remaining string
}

// Battery parses `pmset -g batt`. Desktops without a battery return an error.
func Battery(out string) (*BatteryStatus, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		_, info, ok := strings.Cut(line, ")")
		if !ok {
			continue
		}
		parts := strings.Split(info, ";")
		if len(parts) < 2 {
			return nil, fmt.Errorf("unrecognized battery line: %q", line)
		}
		pctStr := strings.TrimSuffix(strings.TrimSpace(parts[0]), "%")
		pct, err := strconv.Atoi(pctStr)
		if err != nil {
			return nil, fmt.Errorf("unrecognized battery percentage in: %q", line)
		}
		status := &BatteryStatus{Percent: pct, State: strings.TrimSpace(parts[1])}
		if len(parts) > 2 {
			rem := strings.TrimSpace(parts[2])
			if fields := strings.Fields(rem); len(fields) > 0 && strings.Contains(fields[0], ":") {
				status.Remaining = fields[0]
			}
		}
		return status, nil
	}
	return nil, fmt.Errorf("no battery found")
}

// ListenEntry is one row of `lsof -iTCP -sTCP:LISTEN -P -n` output.
type ListenEntry struct {
	Command string
	PID     int
	User    string
	Address string
}

// ListenPorts parses the lsof listening-socket table.
func ListenPorts(out string) []ListenEntry {
	var entries []ListenEntry
	for i, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if i == 0 || len(fields) < 9 {
			// Header row, blank lines, or truncated rows.
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		entries = append(entries, ListenEntry{
			Command: fields[0],
			PID:     pid,
			User:    fields[2],
			Address: fields[8],
		})
	}
	return entries
}

// PIDs parses `lsof -ti ...` output, one process id per line.
func PIDs(out string) ([]int, error) {
	var pids []int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("unexpected pid line: %q", line)
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// Process is one row of `ps aux` output.
type Process struct {
	User    string
	PID     int
	CPU     float64
	Mem     float64
	Command string
}

// PSAux parses `ps aux` rows. Column positions are not assumed beyond the
// documented field order; the command is everything after the tenth field.
func PSAux(out string) []Process {
	var procs []Process
	for i, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if i == 0 || len(fields) < 11 {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		cpu, _ := strconv.ParseFloat(fields[2], 64)
		mem, _ := strconv.ParseFloat(fields[3], 64)
		procs = append(procs, Process{
			User:    fields[0],
			PID:     pid,
			CPU:     cpu,
			Mem:     mem,
			Command: strings.Join(fields[10:], " "),
		})
	}
	return procs
}

// VolumeSettings parses the osascript `get volume settings` reply, e.g.
// "output volume:46, input volume:70, alert volume:100, output muted:false".
func VolumeSettings(out string) (volume int, muted bool, err error) {
	volume = -1
	for _, part := range strings.Split(strings.TrimSpace(out), ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "output volume":
			volume, err = strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return 0, false, fmt.Errorf("unrecognized volume settings: %q", out)
			}
		case "output muted":
			muted = strings.TrimSpace(val) == "true"
		}
	}
	if volume < 0 {
		return 0, false, fmt.Errorf("no output volume in: %q", out)
	}
	return volume, muted, nil
}

// BoolFlag interprets a `defaults read` boolean value.
func BoolFlag(out string) bool {
	switch strings.ToLower(strings.TrimSpace(out)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// BootTime parses `sysctl -n kern.boottime`, e.g.
// "{ sec = 1724500000, usec = 612345 } Sun Aug 24 10:26:40 2025".
func BootTime(out string) (time.Time, error) {
	_, rest, ok := strings.Cut(out, "sec =")
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized boottime output: %q", out)
	}
	secStr := strings.TrimSpace(rest)
	if idx := strings.IndexAny(secStr, ", }"); idx >= 0 {
		secStr = secStr[:idx]
	}
	sec, err := strconv.ParseInt(secStr, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized boottime seconds in: %q", out)
	}
	return time.Unix(sec, 0), nil
}
