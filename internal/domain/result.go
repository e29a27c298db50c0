package domain

import (
	"time"

	"github.com/google/uuid"
)

// Uncertainty is the model's self-reported confidence for one nodule.
type Uncertainty struct {
	Confidence  float64 `json:"confidence"`
	Entropy     float64 `json:"entropy"`
	NeedsReview bool    `json:"needs_review"`
}

// BoundingBox holds [min, max] voxel ranges per axis.
type BoundingBox struct {
	Z [2]int `json:"z"`
	Y [2]int `json:"y"`
	X [2]int `json:"x"`
}

// Nodule is a single detected lesion.
type Nodule struct {
	ID            int         `json:"id"`
	Centroid      [3]float64  `json:"centroid"`
	BBox          BoundingBox `json:"bbox"`
	LongAxisMM    float64     `json:"long_axis_mm"`
	VolumeMM3     float64     `json:"volume_mm3"`
	Type          string      `json:"type"`
	Location      string      `json:"location"`
	ProbMalignant float64     `json:"prob_malignant"`
	Uncertainty   Uncertainty `json:"uncertainty"`
	MaskPath      string      `json:"mask_path,omitempty"`
}

// Findings is the structured payload produced by the analysis worker.
type Findings struct {
	LungHealth          string   `json:"lung_health"`
	AirwayWallThickness string   `json:"airway_wall_thickness,omitempty"`
	EmphysemaScore      float64  `json:"emphysema_score"`
	FibrosisScore       float64  `json:"fibrosis_score"`
	ConsolidationScore  float64  `json:"consolidation_score"`
	Impression          string   `json:"impression"`
	SummaryText         string   `json:"summary_text"`
	Nodules             []Nodule `json:"nodules"`
	ProcessingSeconds   *float64 `json:"processing_time_seconds,omitempty"`
}

// NumNodules mirrors the count reported alongside the nodule list.
func (f Findings) NumNodules() int { return len(f.Nodules) }

// Result holds AI findings for a case. There is at most one per case.
type Result struct {
	ScanID      uuid.UUID `json:"scan_id"`
	Findings    Findings  `json:"findings"`
	GeneratedAt time.Time `json:"generated_at"`
}
