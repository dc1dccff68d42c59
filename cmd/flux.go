/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ctflux/InputParameters"
	"github.com/notargets/ctflux/hydro"
	"github.com/notargets/ctflux/model_problems/MHD3D"
	"github.com/notargets/ctflux/types"
	"github.com/notargets/ctflux/utils"
)

type ModelFlux struct {
	ICFile  string
	Profile string
	Threads int
	Verbose bool
}

// FluxCmd represents the flux command
var FluxCmd = &cobra.Command{
	Use:   "flux",
	Short: "Compute the face fluxes of one block from an initial condition",
	Long: `
Builds a block and an initial condition from a YAML input file, runs the flux
calculation the requested number of times and prints a summary of the mass
fluxes, EMFs and upwind weights on each swept direction.

ctflux flux -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mf := &ModelFlux{}
		if mf.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		if mf.Profile, err = cmd.Flags().GetString("profile"); err != nil {
			panic(err)
		}
		mf.Threads = viper.GetInt("threads")
		mf.Verbose = viper.GetBool("verbose")
		ip := processFluxInput(mf)
		if mf.Threads != 0 {
			ip.Threads = mf.Threads
		}
		if mf.Verbose {
			ip.Print()
		}
		switch mf.Profile {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}
		summaries, err := RunFlux(ip, mf.Verbose)
		if err != nil {
			logrus.WithError(err).Error("flux calculation failed")
			os.Exit(1)
		}
		for _, s := range summaries {
			s.Print()
		}
	},
}

func init() {
	rootCmd.AddCommand(FluxCmd)
	FluxCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Nx\n\t- MagneticFields\n\t- FluxType")
	FluxCmd.Flags().StringP("profile", "p", "", "write a profile of the run: cpu or mem")
	FluxCmd.Flags().IntP("threads", "t", 0, "number of workers, overrides the input file (0 = from input)")
	if err := viper.BindPFlag("threads", FluxCmd.Flags().Lookup("threads")); err != nil {
		panic(err)
	}
}

func processFluxInput(mf *ModelFlux) (ip *InputParameters.FluxParameters) {
	var (
		err  error
		data []byte
	)
	if len(mf.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Brio-Wu"
Nx: [256, 4, 1]
XMin: [-0.5, 0, 0]
XMax: [0.5, 0.015625, 1]
MagneticFields: true
NonBarotropicEOS: true
Gamma: 2.
FluxType: HLLE # Can be "LLF"
Limiter: MinMod # Can be "VanLeer"
ReconstructOrder: 2
InitType: ShockTube # Can be "Uniform" or "Blast"
Dt: 0.0005
Steps: 10
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(mf.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.FluxParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

// RunFlux builds the block described by ip and runs the flux calculation ip.Steps times
func RunFlux(ip *InputParameters.FluxParameters, verbose bool) (summaries []FluxSummary, err error) {
	var (
		blk    *hydro.Block
		coords *hydro.Cartesian
		cfg    hydro.Config
		h      *hydro.Hydro
		ic     *MHD3D.InitialCondition
	)
	if cfg, err = ip.HydroConfig(verbose); err != nil {
		return
	}
	if blk, err = hydro.NewBlock(ip.Nx[0], ip.Nx[1], ip.Nx[2]); err != nil {
		return
	}
	if coords, err = hydro.NewUniformCartesian(blk, ip.XMin, ip.XMax); err != nil {
		return
	}
	if h, err = hydro.NewHydro(blk, cfg, coords); err != nil {
		return
	}
	if ic, err = MHD3D.NewInitialCondition(MHD3D.NewInitType(ip.InitType), cfg.MagneticFields,
		ip.XMin, ip.XMax, ip.InitState); err != nil {
		return
	}
	w, b, bcc := ic.Fields(h, coords)
	start := time.Now()
	for n := 0; n < ip.Steps; n++ {
		h.CalculateFluxes(ip.Dt, w, b, bcc, ip.ReconstructOrder)
	}
	log := logrus.WithFields(logrus.Fields{
		"steps":   ip.Steps,
		"elapsed": time.Since(start).String(),
		"workers": h.ParallelDegree,
	})
	if verbose {
		log = log.WithField("memory", utils.GetMemUsage())
	}
	log.Info("flux calculation finished")
	if utils.IsNan(h.Flux) || (cfg.MagneticFields && utils.IsNan([3]utils.Array3D{h.Weight.X1F, h.Weight.X2F, h.Weight.X3F})) {
		log.Warn("non-finite fluxes, check the input state for zero densities or widths")
	}
	for _, sr := range h.Sweeps {
		summaries = append(summaries, Summarize(h, sr))
	}
	return
}

// FluxSummary holds reductions over the faces of one sweep
type FluxSummary struct {
	Dir                      types.Direction
	Faces                    int
	MassFluxMin, MassFluxMax float64
	MassFluxSum              float64
	WeightMin, WeightMax     float64
	EMFMaxAbs                [2]float64
	MagneticFields           bool
}

func Summarize(h *hydro.Hydro, sr hydro.SweepRange) (s FluxSummary) {
	var (
		d    = sr.Dir
		mass = h.Flux[d].Var(types.IDN)
	)
	s = FluxSummary{Dir: d, MagneticFields: h.Config.MagneticFields}
	mf := gatherFaces(sr, mass)
	s.Faces = len(mf)
	s.MassFluxMin, s.MassFluxMax, s.MassFluxSum = floats.Min(mf), floats.Max(mf), floats.Sum(mf)
	if s.MagneticFields {
		wt := gatherFaces(sr, h.Weight.Dir(d))
		s.WeightMin, s.WeightMax = floats.Min(wt), floats.Max(wt)
		for m := 0; m < 2; m++ {
			s.EMFMaxAbs[m] = floats.Norm(gatherFaces(sr, h.EMF[d][m]), math.Inf(1))
		}
	}
	return
}

// gatherFaces collects the values of a face array over the faces of a sweep
func gatherFaces(sr hydro.SweepRange, a utils.Array3D) (vals []float64) {
	for l := 0; l < sr.NumLines(); l++ {
		ln := sr.Line(l)
		base, stride := ln.Index3D(a)
		for i := ln.Il; i <= ln.Iu; i++ {
			vals = append(vals, a.DataP[base+i*stride])
		}
	}
	return
}

func (s FluxSummary) Print() {
	fmt.Printf("%s: %d faces, mass flux [%10.6f, %10.6f], sum = %12.6f\n",
		s.Dir, s.Faces, s.MassFluxMin, s.MassFluxMax, s.MassFluxSum)
	if s.MagneticFields {
		fmt.Printf("%s: upwind weight [%8.5f, %8.5f], max |EMF| = [%10.6f, %10.6f]\n",
			s.Dir, s.WeightMin, s.WeightMax, s.EMFMaxAbs[0], s.EMFMaxAbs[1])
	}
}
