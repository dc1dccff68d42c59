package hydro

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

/*
Hydro owns the face outputs of one block and the per-worker scratch used to
compute them. Everything that depends on the feature flags is decided here,
once: which variables are reconstructed, which Riemann solver runs, which
sweeps exist and how their lines are split over workers.
*/
type Hydro struct {
	Block  *Block
	Config Config
	Coords Coordinates
	NHydro int

	// Outputs, rewritten on every CalculateFluxes call
	Flux   [3]utils.Array4D    // NHydro x face-staggered along each direction
	EMF    [3][2]utils.Array3D // X1: {E3, E2}, X2: {E1, E3}, X3: {E2, E1}, MHD only
	Weight FaceField           // CT upwind weights, MHD only

	ParallelDegree int
	Sweeps         []SweepRange
	partitions     []*utils.PartitionMap // One per sweep
	plans          [3][]reconstructionTarget
	arenas         []*Arena              // One per worker

	donorCell     Reconstructor
	highOrder     Reconstructor
	riemannSolver RiemannSolver
	gravity       GravitySource
	log           *logrus.Entry
}

type Option func(h *Hydro)

// WithGravity sets the self-gravity collaborator, required when SelfGravity is enabled
func WithGravity(gs GravitySource) Option {
	return func(h *Hydro) { h.gravity = gs }
}

// WithRiemannSolver replaces the solver selected by Config.Flux
func WithRiemannSolver(rs RiemannSolver) Option {
	return func(h *Hydro) { h.riemannSolver = rs }
}

// WithReconstructor replaces the reconstruction used for orders above one
func WithReconstructor(r Reconstructor) Option {
	return func(h *Hydro) { h.highOrder = r }
}

func WithLogger(log *logrus.Entry) Option {
	return func(h *Hydro) { h.log = log }
}

func NewHydro(blk *Block, cfg Config, coords Coordinates, opts ...Option) (h *Hydro, err error) {
	if blk == nil || coords == nil {
		return nil, fmt.Errorf("block and coordinates are required")
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flux configuration: %w", err)
	}
	h = &Hydro{
		Block:          blk,
		Config:         cfg,
		Coords:         coords,
		NHydro:         types.NumHydro(cfg.NonBarotropic),
		ParallelDegree: utils.ParallelDegree(cfg.Threads),
		donorCell:      NewReconstructor(1, cfg.Limiter),
		highOrder:      NewReconstructor(2, cfg.Limiter),
		riemannSolver:  NewRiemannSolver(cfg),
		log:            logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(h)
	}
	if cfg.SelfGravity.Enabled() && h.gravity == nil {
		return nil, fmt.Errorf("self gravity mode %s requires a gravity source", cfg.SelfGravity.Print())
	}
	if h.highOrder.Stencil() > NGHOST {
		return nil, fmt.Errorf("reconstruction stencil %d exceeds the ghost depth %d",
			h.highOrder.Stencil(), NGHOST)
	}
	for d := types.X1DIR; d <= types.X3DIR; d++ {
		h.Flux[d] = blk.NewFaceArray(h.NHydro, d)
		if cfg.MagneticFields {
			h.EMF[d][0] = utils.NewArray3D(blk.FaceDims(d))
			h.EMF[d][1] = utils.NewArray3D(blk.FaceDims(d))
		}
		h.plans[d] = h.reconstructionPlan(d)
		if blk.Swept(d) {
			sr := NewSweepRange(blk, d, cfg.MagneticFields)
			h.Sweeps = append(h.Sweeps, sr)
			h.partitions = append(h.partitions, utils.NewPartitionMap(h.ParallelDegree, sr.NumLines()))
		}
	}
	if cfg.MagneticFields {
		h.Weight = NewFaceField(blk)
	}
	h.arenas = make([]*Arena, h.ParallelDegree)
	for np := range h.arenas {
		h.arenas[np] = NewArena(blk.MaxLine())
	}
	if cfg.Verbose {
		h.log.WithFields(logrus.Fields{
			"block":          fmt.Sprintf("%dx%dx%d", blk.Nx[0], blk.Nx[1], blk.Nx[2]),
			"magneticFields": cfg.MagneticFields,
			"nonBarotropic":  cfg.NonBarotropic,
			"selfGravity":    cfg.SelfGravity.Print(),
			"flux":           cfg.Flux.Print(),
			"limiter":        cfg.Limiter.Print(),
			"workers":        h.ParallelDegree,
			"sweeps":         len(h.Sweeps),
		}).Info("flux calculator configured")
	}
	return
}

// reconstructionTarget maps one source variable onto a wave slot of the arena
type reconstructionTarget struct {
	cellCentered bool // Read from the cell-centered magnetic field instead of the primitives
	src, dst     int
}

func (h *Hydro) reconstructionPlan(d types.Direction) (plan []reconstructionTarget) {
	for n := 0; n < h.NHydro; n++ {
		plan = append(plan, reconstructionTarget{src: n, dst: n})
	}
	if h.Config.MagneticFields {
		iby, ibz := types.TransverseFieldIndices(d)
		plan = append(plan,
			reconstructionTarget{cellCentered: true, src: iby, dst: types.IBY},
			reconstructionTarget{cellCentered: true, src: ibz, dst: types.IBZ},
		)
	}
	return
}
