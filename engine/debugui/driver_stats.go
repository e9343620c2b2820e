package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/engine"
)

// StatsSource supplies driver statistics. *engine.Driver implements it.
type StatsSource interface {
	GetStats() engine.DriverStats
}

// DriverStatsWindow shows frame times and per-op execution timings.
type DriverStatsWindow struct {
	source        StatsSource
	timer         *FrameTimer
	historyFrames int
	frames        *History
	latency       map[string]*History
}

func NewDriverStatsWindow(source StatsSource, historyFrames int) *DriverStatsWindow {
	return &DriverStatsWindow{
		source:        source,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frames:        NewHistory(historyFrames),
		latency:       make(map[string]*History),
	}
}

// Sample records one frame: its duration and each op's most recent latency.
// Render calls it once per frame.
func (w *DriverStatsWindow) Sample(deltaTime float32, stats engine.DriverStats) {
	w.frames.Push(deltaTime * 1000.0)
	for _, op := range stats.Ops {
		h, ok := w.latency[op.Name]
		if !ok {
			h = NewHistory(w.historyFrames)
			w.latency[op.Name] = h
		}
		h.Push(float32(op.LastDuration.Microseconds()))
	}
}

// Frames returns the frame time history in milliseconds.
func (w *DriverStatsWindow) Frames() *History {
	return w.frames
}

// Latency returns the latency history, in microseconds, of the named op.
func (w *DriverStatsWindow) Latency(op string) *History {
	return w.latency[op]
}

func (w *DriverStatsWindow) Render() {
	stats := w.source.GetStats()
	w.Sample(w.timer.GetDeltaTime(), stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 420), imgui.CondOnce)

	if !imgui.BeginV("Driver Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := w.frames.Average()
	imgui.Text(fmt.Sprintf("Total Steps: %d", stats.TotalSteps))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	frames := w.frames.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

	if imgui.TreeNodeStr("Op Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("OpStatsTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Op")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, op := range stats.Ops {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(op.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", op.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(op.MinDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(op.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(op.MaxDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(op.LastDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Op Latency") {
		if implot.BeginPlotV("Op Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Time (us)", 0, implot.AxisFlagsAutoFit)
			for _, op := range stats.Ops {
				h := w.latency[op.Name]
				if h == nil || op.ExecutionCount == 0 {
					continue
				}
				samples := h.Samples()
				implot.PlotLineFloatPtrInt(op.Name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fus", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
