package hydro

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

/*
CalculateFluxes computes the face fluxes of the block for one sub-step.

	w     primitive variables, NHydro x cells
	b     face-centered magnetic field (MHD only)
	bcc   cell-centered magnetic field derived from b (MHD only)
	order reconstruction order, 1 is donor cell

Directions are swept X1, X2, X3, skipping collapsed ones, and each sweep is a
fork-join over the workers: no sweep starts before the previous one has
finished with the shared per-worker arenas. The inputs are only read. Shape
mismatches and order < 1 are programming errors and panic.
*/
func (h *Hydro) CalculateFluxes(dt float64, w utils.Array4D, b FaceField, bcc utils.Array4D, order int) {
	var (
		blk        = h.Block
		nk, nj, ni = blk.CellDims()
		recon      = h.donorCell
	)
	if order < 1 {
		panic(fmt.Errorf("reconstruction order must be >= 1, have %d", order))
	}
	if order > 1 {
		recon = h.highOrder
	}
	checkDims4D("primitive field", w, h.NHydro, nk, nj, ni)
	if h.Config.MagneticFields {
		checkDims4D("cell-centered field", bcc, types.NFIELD, nk, nj, ni)
		for d := types.X1DIR; d <= types.X3DIR; d++ {
			fk, fj, fi := blk.FaceDims(d)
			checkDims3D(fmt.Sprintf("%s face field", d), b.Dir(d), fk, fj, fi)
		}
	}

	for s, sr := range h.Sweeps {
		h.sweep(sr, h.partitions[s], dt, w, b, bcc, recon)
	}

	if h.Config.SelfGravity.Enabled() {
		h.gravity.AddGravityFlux(&h.Flux)
	}
	if h.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		h.log.WithFields(logrus.Fields{
			"dt":     dt,
			"order":  order,
			"sweeps": len(h.Sweeps),
		}).Debug("fluxes calculated")
	}
}

// sweep computes every line of one direction, returning after all workers finish
func (h *Hydro) sweep(sr SweepRange, pm *utils.PartitionMap, dt float64,
	w utils.Array4D, b FaceField, bcc utils.Array4D, recon Reconstructor) {
	var (
		d        = sr.Dir
		mhd      = h.Config.MagneticFields
		ivx      = types.VelocityIndex(d)
		flux     = h.Flux[d]
		ey, ez   = h.EMF[d][0], h.EMF[d][1]
		plan     = h.plans[d]
		stencil  = recon.Stencil()
		bx, wght utils.Array3D
	)
	if mhd {
		bx, wght = b.Dir(d), h.Weight.Dir(d)
	}
	pm.ParallelFor(func(np, lMin, lMax int) {
		ws := h.arenas[np]
		for l := lMin; l < lMax; l++ {
			ln := sr.Line(l)
			ws.Reset(ln.Il-stencil, ln.Iu+stencil)
			h.Coords.CenterWidth(ln, ln.Il-stencil, ln.Iu+stencil-1, ws.Dxw)
			for _, tgt := range plan {
				src := w
				if tgt.cellCentered {
					src = bcc
				}
				recon.Reconstruct(ln, src, tgt.src, tgt.dst, ws.Dxw, ws.WL, ws.WR)
			}
			h.riemannSolver.Solve(ln, ivx, bx, ws.WL, ws.WR, flux, ey, ez)
			if mhd {
				CTWeights(ln, dt, flux, ws.WL, ws.WR, ws.Dxw, wght)
			}
		}
	})
}
