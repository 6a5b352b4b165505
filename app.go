package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/PrashantWebGL/House3DVisulaizer/pkg/kernel"
	"github.com/PrashantWebGL/House3DVisulaizer/pkg/kernel/sdfx"
	"github.com/PrashantWebGL/House3DVisulaizer/pkg/scene"
	"github.com/PrashantWebGL/House3DVisulaizer/pkg/survey"
	"github.com/PrashantWebGL/House3DVisulaizer/pkg/tessellate"
)

// Status vocabulary surfaced to the frontend. The frontend itself emits
// "loading" and "error: could not read file", since it owns file reading.
const (
	statusInvalidJSON     = "error: invalid JSON"
	statusUnrecognized    = "error: unrecognized format"
	statusRenderingFailed = "error: rendering failed"
)

// minCameraSpan floors the camera-fit bound so a tiny or single-point
// model still frames sensibly.
const minCameraSpan = 10.0

// App is the Wails backend. It exposes the survey pipeline to the
// frontend via bindings and tracks which object IDs are live so each
// upload can retire the previous scene.
type App struct {
	ctx    context.Context
	kernel kernel.Kernel

	mu   sync.Mutex
	live []string // object IDs from the last successful load
}

// SceneObject is one renderable object sent to the frontend: primitive
// parameters plus a ready triangle mesh. Exactly one of Box, Polygon,
// Segment is set, matching Kind.
type SceneObject struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Category string         `json:"category"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Box      *scene.Box     `json:"box,omitempty"`
	Polygon  *scene.Polygon `json:"polygon,omitempty"`
	Segment  *scene.Segment `json:"segment,omitempty"`
	Mesh     *kernel.Mesh   `json:"mesh,omitempty"`
}

// Stats summarizes one load for the frontend's info panel.
type Stats struct {
	Schema  string            `json:"schema"`
	Counts  map[string]int    `json:"counts"`  // category key → object count
	Legend  map[string]string `json:"legend"`  // category key → legend label
	Total   int               `json:"total"`   // objects inserted
	Skipped int               `json:"skipped"` // degenerate records skipped
}

// RenderResult is the full result of one upload event. The frontend must
// dispose every object in Retired (geometry and material) before
// inserting Objects; on a failed load Retired is empty and the previous
// scene stays visible.
type RenderResult struct {
	Objects []SceneObject `json:"objects"`
	Retired []string      `json:"retired"`
	Stats   Stats         `json:"stats"`
	Bounds  scene.AABB    `json:"bounds"`
	Status  string        `json:"status"`
}

// NewApp creates a new App with the sdfx geometry kernel.
func NewApp() *App {
	return &App{kernel: sdfx.New()}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// LoadSurvey runs the full pipeline for one upload: parse → detect →
// synthesize → tessellate. This is the primary binding called by the
// frontend. It never panics across the binding boundary; unexpected
// synthesis failures degrade to a "rendering failed" status with the
// prior scene untouched.
func (a *App) LoadSurvey(name string, jsonText string) (result RenderResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("LoadSurvey panic: %v", r)
			result = RenderResult{Status: statusRenderingFailed}
		}
	}()

	doc, err := survey.Parse([]byte(jsonText))
	if err != nil {
		switch {
		case errors.Is(err, survey.ErrInvalidJSON):
			return RenderResult{Status: statusInvalidJSON}
		case errors.Is(err, survey.ErrUnrecognizedFormat):
			return RenderResult{Status: statusUnrecognized}
		default:
			log.Printf("LoadSurvey parse error: %v", err)
			return RenderResult{Status: statusRenderingFailed}
		}
	}

	plan, err := scene.Synthesize(doc)
	if err != nil {
		log.Printf("LoadSurvey synthesize error: %v", err)
		return RenderResult{Status: statusRenderingFailed}
	}

	meshes, err := tessellate.Tessellate(plan, a.kernel)
	if err != nil {
		log.Printf("LoadSurvey tessellate error: %v", err)
		return RenderResult{Status: statusRenderingFailed}
	}

	objects := make([]SceneObject, 0, len(plan.Primitives))
	ids := make([]string, 0, len(plan.Primitives))
	for i, prim := range plan.Primitives {
		obj := SceneObject{
			ID:       uuid.NewString(),
			Kind:     prim.Kind.String(),
			Category: prim.Category.String(),
			Label:    prim.Category.Label(),
			Color:    prim.Category.Color(),
			Mesh:     meshes[i],
		}
		switch data := prim.Data.(type) {
		case scene.Box:
			obj.Box = &data
		case scene.Polygon:
			obj.Polygon = &data
		case scene.Segment:
			obj.Segment = &data
		}
		ids = append(ids, obj.ID)
		objects = append(objects, obj)
	}

	// The new scene is live only now; a failed load never reaches this
	// point, so the previous objects stay undisturbed.
	a.mu.Lock()
	retired := a.live
	a.live = ids
	a.mu.Unlock()
	if retired == nil {
		retired = []string{}
	}

	return RenderResult{
		Objects: objects,
		Retired: retired,
		Stats:   planStats(plan),
		Bounds:  plan.CameraBounds(minCameraSpan),
		Status:  loadStatus(plan, name),
	}
}

// planStats converts a plan's typed counts to the string-keyed form the
// frontend consumes.
func planStats(plan *scene.Plan) Stats {
	counts := make(map[string]int, len(plan.Counts))
	legend := make(map[string]string, len(plan.Counts))
	for cat, n := range plan.Counts {
		counts[cat.String()] = n
		legend[cat.String()] = cat.Label()
	}
	return Stats{
		Schema:  plan.Schema.String(),
		Counts:  counts,
		Legend:  legend,
		Total:   len(plan.Primitives),
		Skipped: plan.Skipped,
	}
}

// loadStatus produces the per-schema success message.
func loadStatus(plan *scene.Plan, name string) string {
	if plan.Schema == survey.SchemaCurrentRecords {
		records := len(plan.Primitives) + plan.Skipped
		return fmt.Sprintf("project %s — %d records loaded", plan.ProjectID, records)
	}
	return "applied: " + name
}
