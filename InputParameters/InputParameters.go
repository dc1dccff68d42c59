package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/ctflux/hydro"
)

// Parameters obtained from the YAML input file
type FluxParameters struct {
	Title            string             `yaml:"Title"`
	Nx               [3]int             `yaml:"Nx"`
	XMin             [3]float64         `yaml:"XMin"`
	XMax             [3]float64         `yaml:"XMax"`
	ReconstructOrder int                `yaml:"ReconstructOrder"`
	MagneticFields   bool               `yaml:"MagneticFields"`
	NonBarotropicEOS bool               `yaml:"NonBarotropicEOS"`
	SelfGravity      int                `yaml:"SelfGravity"` // 0 = off, 1 = FFT, 2 = multigrid
	Gamma            float64            `yaml:"Gamma"`
	IsoSoundSpeed    float64            `yaml:"IsoSoundSpeed"`
	FluxType         string             `yaml:"FluxType"`
	Limiter          string             `yaml:"Limiter"`
	InitType         string             `yaml:"InitType"`
	InitState        map[string]float64 `yaml:"InitState"` // Overrides for the initial condition, e.g. rho, vx, bx
	Dt               float64            `yaml:"Dt"`
	Steps            int                `yaml:"Steps"`
	Threads          int                `yaml:"Threads"`
}

func (ip *FluxParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return
}

func (ip *FluxParameters) setDefaults() {
	for d := 0; d < 3; d++ {
		if ip.Nx[d] == 0 {
			ip.Nx[d] = 1
		}
		if ip.XMax[d] == ip.XMin[d] {
			ip.XMax[d] = ip.XMin[d] + 1
		}
	}
	if ip.ReconstructOrder == 0 {
		ip.ReconstructOrder = 2
	}
	if ip.Steps == 0 {
		ip.Steps = 1
	}
	if ip.NonBarotropicEOS && ip.Gamma == 0 {
		ip.Gamma = 5. / 3.
	}
	if !ip.NonBarotropicEOS && ip.IsoSoundSpeed == 0 {
		ip.IsoSoundSpeed = 1
	}
	if len(ip.FluxType) == 0 {
		ip.FluxType = "llf"
	}
	if len(ip.InitType) == 0 {
		ip.InitType = "uniform"
	}
}

// HydroConfig translates the parameters into the flux configuration. Unknown
// flux or limiter names panic, as they do everywhere else.
func (ip *FluxParameters) HydroConfig(verbose bool) (cfg hydro.Config, err error) {
	cfg = hydro.Config{
		MagneticFields: ip.MagneticFields,
		NonBarotropic:  ip.NonBarotropicEOS,
		SelfGravity:    hydro.GravityMode(ip.SelfGravity),
		Gamma:          ip.Gamma,
		IsoSoundSpeed:  ip.IsoSoundSpeed,
		Flux:           hydro.NewFluxType(ip.FluxType),
		Limiter:        hydro.NewLimiterType(ip.Limiter),
		Threads:        ip.Threads,
		Verbose:        verbose,
	}
	if ip.SelfGravity < 0 {
		err = fmt.Errorf("self gravity mode must be 0, 1 or 2, have %d", ip.SelfGravity)
		return
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if ip.ReconstructOrder < 1 {
		err = fmt.Errorf("reconstruction order must be >= 1, have %d", ip.ReconstructOrder)
	}
	return
}

func (ip *FluxParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d,%d,%d]\t\t= Block Size\n", ip.Nx[0], ip.Nx[1], ip.Nx[2])
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("[%d]\t\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("[%d]\t\t\t\t= Reconstruction Order\n", ip.ReconstructOrder)
	fmt.Printf("[%v]\t\t\t= Magnetic Fields\n", ip.MagneticFields)
	if ip.NonBarotropicEOS {
		fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	} else {
		fmt.Printf("%8.5f\t\t= Isothermal Sound Speed\n", ip.IsoSoundSpeed)
	}
	fmt.Printf("[%s]\t\t\t= Self Gravity\n", hydro.GravityMode(ip.SelfGravity).Print())
	keys := make([]string, len(ip.InitState))
	i := 0
	for k := range ip.InitState {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("InitState[%s] = %v\n", key, ip.InitState[key])
	}
}
