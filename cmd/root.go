// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/antoinewdg/lumol/energy"
	"github.com/antoinewdg/lumol/inp"
	"github.com/antoinewdg/lumol/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	dirOut   string
)

var rootCmd = &cobra.Command{
	Use:   "lumol",
	Short: "An extensible molecular simulation engine",
}

var runCmd = &cobra.Command{
	Use:   "run [input.yml]",
	Short: "Run the simulation described by an input deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defer fatalRecover()
		setLogLevel()

		deck, system, pot := load(args[0])
		simulation, recorders, err := deck.AllocSimulation(system, pot)
		if err != nil {
			chk.Panic("cannot allocate simulation:\n%v", err)
		}

		logrus.Infof("Starting %q with %d particles", deck.Desc, system.Size())
		simulation.Run(deck.Simulation.Nsteps)
		for _, rec := range recorders {
			rec.Save(dirOut, deck.Simulation.Output)
		}
		logrus.Infof("Final energy: %23.15e", pot.Energy(system))
	},
}

var energyCmd = &cobra.Command{
	Use:   "energy [input.yml]",
	Short: "Print the electrostatic energy of an input deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defer fatalRecover()
		setLogLevel()

		deck, system, pot := load(args[0])
		io.Pf("%q: %d particles\n", deck.Desc, system.Size())
		io.Pf("energy = %23.15e\n", pot.Energy(system))
	},
}

// Execute runs the command line interface
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&dirOut, "dirout", "/tmp/lumol", "directory for output files")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(energyCmd)
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// load reads a deck and allocates the system and the potential
func load(path string) (deck *inp.Deck, system *sys.System, pot energy.CoulombicPotential) {
	d, err := inp.Read(path)
	if err != nil {
		chk.Panic("cannot read input deck:\n%v", err)
	}
	s, err := d.AllocSystem()
	if err != nil {
		chk.Panic("cannot allocate system:\n%v", err)
	}
	p, err := d.AllocPotential()
	if err != nil {
		chk.Panic("cannot allocate potential:\n%v", err)
	}
	return d, s, p
}

// fatalRecover prints the caller information of a fatal error and exits
func fatalRecover() {
	if err := recover(); err != nil {
		chk.Verbose = true
		for i := 8; i > 3; i-- {
			chk.CallerInfo(i)
		}
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
