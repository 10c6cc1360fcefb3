// Package sysmetrics reads point-in-time host metrics for the status
// endpoint. Collection is best effort: readings that fail are left at
// zero rather than failing the whole snapshot.
package sysmetrics

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

type MemoryStats struct {
	UsedPercent float64
}

type SwapStats struct {
	UsedPercent float64
}

type LoadStats struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

type DiskStats struct {
	UsedPercent float64
}

type Snapshot struct {
	LoadAvg1         float64 `json:"load_avg_1"`
	LoadAvg5         float64 `json:"load_avg_5"`
	LoadAvg15        float64 `json:"load_avg_15"`
	MemoryPercent    float64 `json:"memory_percent"`
	SwapUsagePercent float64 `json:"swap_usage_percent"`
	DiskUsagePercent float64 `json:"disk_usage_percent"`
}

type SystemCollector interface {
	VirtualMemory(ctx context.Context) (MemoryStats, error)
	SwapMemory(ctx context.Context) (SwapStats, error)
	LoadAvg(ctx context.Context) (LoadStats, error)
	DiskUsage(ctx context.Context) (DiskStats, error)
}

type Collector interface {
	Collect(ctx context.Context) (Snapshot, error)
}

type Config struct {
	Collector SystemCollector
}

type collector struct {
	sys SystemCollector
}

func New() Collector {
	return NewWithConfig(nil)
}

func NewWithConfig(cfg *Config) Collector {
	var sys SystemCollector
	if cfg != nil && cfg.Collector != nil {
		sys = cfg.Collector
	} else {
		sys = &gopsutilCollector{}
	}
	return &collector{
		sys: sys,
	}
}

func (c *collector) Collect(ctx context.Context) (Snapshot, error) {
	var s Snapshot

	loadStats, err := c.sys.LoadAvg(ctx)
	if err == nil {
		s.LoadAvg1 = loadStats.Load1
		s.LoadAvg5 = loadStats.Load5
		s.LoadAvg15 = loadStats.Load15
	}

	memStats, err := c.sys.VirtualMemory(ctx)
	if err == nil {
		s.MemoryPercent = memStats.UsedPercent
	}

	swapStats, err := c.sys.SwapMemory(ctx)
	if err == nil {
		s.SwapUsagePercent = swapStats.UsedPercent
	}

	diskStats, err := c.sys.DiskUsage(ctx)
	if err == nil {
		s.DiskUsagePercent = diskStats.UsedPercent
	}

	return s, nil
}

type gopsutilCollector struct{}

func (g *gopsutilCollector) VirtualMemory(ctx context.Context) (MemoryStats, error) {
	m, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, err
	}
	return MemoryStats{UsedPercent: m.UsedPercent}, nil
}

func (g *gopsutilCollector) SwapMemory(ctx context.Context) (SwapStats, error) {
	s, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return SwapStats{}, err
	}
	return SwapStats{UsedPercent: s.UsedPercent}, nil
}

func (g *gopsutilCollector) LoadAvg(ctx context.Context) (LoadStats, error) {
	l, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadStats{}, err
	}
	return LoadStats{
		Load1:  l.Load1,
		Load5:  l.Load5,
		Load15: l.Load15,
	}, nil
}

func (g *gopsutilCollector) DiskUsage(ctx context.Context) (DiskStats, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return DiskStats{}, err
	}

	var totalUsed, totalFree uint64
	for _, p := range partitions {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		totalUsed += usage.Used
		totalFree += usage.Free
	}

	total := totalUsed + totalFree
	if total == 0 {
		return DiskStats{UsedPercent: 0}, nil
	}

	return DiskStats{
		UsedPercent: float64(totalUsed) / float64(total) * 100,
	}, nil
}
