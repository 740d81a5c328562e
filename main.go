// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mdl/eos"
	"github.com/cpmech/gompm/mdl/failure"
	"github.com/cpmech/gompm/mdl/material"
	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gompm/mdl/strength"
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	matFile  string
	matName  string
	pathFile string
	plotKeys []string
	every    int
	width    int
	height   int
	expVol   bool
	save     bool
	quiet    bool
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:          "gompm",
		Short:        "constitutive models of material points",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not show warnings")

	runCmd := &cobra.Command{
		Use:   "run [file.sim]",
		Short: "drive one material point along a strain path",
		Long: "drive one material point along a strain path given either by a simulation file\n" +
			"or by the --mat, --name and --path flags",
		Args: cobra.MaximumNArgs(1),
		RunE: runSimulation,
	}
	runCmd.Flags().StringVar(&matFile, "mat", "", "materials file (.mat, .json, .yaml)")
	runCmd.Flags().StringVar(&matName, "name", "", "name of material")
	runCmd.Flags().StringVar(&pathFile, "path", "", "strain path file (.json, .yaml)")
	runCmd.Flags().StringSliceVar(&plotKeys, "plot", nil, "plot these history keys")
	runCmd.Flags().IntVar(&every, "every", 0, "show every n records; 0 means the simulation file value")
	runCmd.Flags().IntVar(&width, "width", 80, "plot width")
	runCmd.Flags().IntVar(&height, "height", 15, "plot height")
	runCmd.Flags().BoolVar(&expVol, "exp", false, "update the volume with the exponential map")
	runCmd.Flags().BoolVar(&save, "save", false, "save the history table to the output directory")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show parameters of materials in a database",
		RunE:  showInfo,
	}
	infoCmd.Flags().StringVar(&matFile, "mat", "", "materials file (.mat, .json, .yaml)")
	infoCmd.Flags().StringVar(&matName, "name", "", "show this material only")
	infoCmd.MarkFlagRequired("mat")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models and example parameters",
		RunE:  listModels,
	}

	rootCmd.AddCommand(runCmd, infoCmd, modelsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSimulation runs a simulation file or a material/path pair
func runSimulation(cmd *cobra.Command, args []string) (err error) {
	particle.QuietWarnings(quiet)

	// input
	var sim *inp.Simulation
	if len(args) == 1 {
		sim, err = inp.ReadSim(args[0])
		if err != nil {
			return
		}
		if expVol {
			sim.Driver.Exp = true
		}
	} else {
		if matFile == "" || matName == "" || pathFile == "" {
			return chk.Err("either a simulation file or --mat, --name and --path must be given")
		}
		var mdb *inp.MatDb
		mdb, err = inp.ReadMat("", matFile)
		if err != nil {
			return
		}
		m := mdb.Get(matName)
		if m == nil {
			return chk.Err("cannot find material named %q in %q. available: %v", matName, matFile, mdb.Names())
		}
		sim = &inp.Simulation{Material: matName, MatDb: mdb, MatDat: m, Every: 1, DirOut: "/tmp/gompm"}
		sim.Key = io.FnKey(filepath.Base(pathFile))
		sim.Path, err = inp.ReadPath("", pathFile)
		if err != nil {
			return
		}
		sim.Driver = &material.Driver{Silent: true, Exp: expVol}
		err = sim.Driver.Init(m.Mat)
		if err != nil {
			return
		}
	}
	if every > 0 {
		sim.Every = every
	}

	// message
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"material", "name", sim.Material,
		"number of increments", "nincs", sim.Path.Nincs(),
		"time step", "dt", sim.Path.Dt,
		"exponential volume update", "exp", sim.Driver.Exp,
	))

	// run
	sim.Driver.Silent = false
	err = sim.Run()
	if err != nil {
		return
	}

	// results
	var buf bytes.Buffer
	sim.Driver.Hist.Table(&buf, sim.Every)
	io.Pf("\n%s", buf.String())
	io.Pf("\n%s\n", sim.Driver.Hist.Summary(sim.Material, "rho", "p", "seqv", "c", "ie", "T", "epeff", "dmg"))
	if particle.Warnings() > 0 {
		io.Pfyel("%d warnings were issued\n", particle.Warnings())
	}
	if save {
		io.WriteFileVD(sim.DirOut, sim.Key+".txt", &buf)
	}
	for _, key := range plotKeys {
		if sim.Driver.Hist.Get(key) == nil {
			return chk.Err("cannot plot %q. keys are %v", key, material.HistoryKeys)
		}
		io.Pf("\n%s\n", sim.Driver.Hist.Plot(key, &out.PlotOpts{Width: width, Height: height}))
	}
	return
}

// showInfo writes the parameters of materials
func showInfo(cmd *cobra.Command, args []string) (err error) {
	mdb, err := inp.ReadMat("", matFile)
	if err != nil {
		return
	}
	if matName == "" {
		io.Pf("%v", mdb)
		return
	}
	m := mdb.Get(matName)
	if m == nil {
		return chk.Err("cannot find material named %q. available: %v", matName, mdb.Names())
	}
	io.Pf("%v", m)
	return
}

// listModels lists the models of all families with example parameters
func listModels(cmd *cobra.Command, args []string) (err error) {
	io.PfWhite("strength models\n")
	for _, name := range strength.Names() {
		mdl, _ := strength.New(name)
		writePrms(name, mdl.GetPrms(true))
	}
	io.PfWhite("\nequations of state\n")
	for _, name := range eos.Names() {
		mdl, _ := eos.New(name)
		writePrms(name, mdl.GetPrms(true))
	}
	io.PfWhite("\nfailure models\n")
	for _, name := range failure.Names() {
		mdl, _ := failure.New(name)
		writePrms(name, mdl.GetPrms(true))
	}
	return
}

// writePrms writes one line with the name of a model and its parameters
func writePrms(name string, prms dbf.Params) {
	io.Pfgreen("  %-18s", name)
	for _, p := range prms {
		io.Pf(" %s=%g", p.N, p.V)
	}
	io.Pf("\n")
}
