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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/serejina/gonurbs/InputParameters"
	"github.com/serejina/gonurbs/bspline"
	"github.com/serejina/gonurbs/utils"
)

// SampleCmd represents the sample command
var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample basis functions over the parameter domain",
	Long: `
Sweeps the parameter domain of a clamped knot vector at a fixed step and
prints the nonzero basis functions, and optionally their derivatives, at
each sample,

gonurbs sample -n 3 -c 6 -s 0.1 -d 1`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSample{}
		ms.Degree, _ = cmd.Flags().GetInt("degree")
		ms.NumCtrlPts, _ = cmd.Flags().GetInt("ctrlpts")
		ms.SampleStep, _ = cmd.Flags().GetFloat64("step")
		ms.DerivOrder, _ = cmd.Flags().GetInt("derivOrder")
		ms.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunSample(ms)
	},
}

func init() {
	rootCmd.AddCommand(SampleCmd)
	SampleCmd.Flags().IntP("degree", "n", 3, "degree of the basis functions")
	SampleCmd.Flags().IntP("ctrlpts", "c", 6, "number of control points")
	SampleCmd.Flags().IntP("derivOrder", "d", 0, "highest derivative order to evaluate, 0 = values only")
	SampleCmd.Flags().Float64P("step", "s", 0.1, "parameter sampling step")
	SampleCmd.Flags().StringP("inputParametersFile", "I", "", "YAML evaluation parameters file, overrides the flags above")
	SampleCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the run")
}

type ModelSample struct {
	Degree, NumCtrlPts int
	DerivOrder         int
	SampleStep         float64
	ParamFile          string
}

func processInput(ms *ModelSample) (ep *InputParameters.EvalParameters) {
	ep = &InputParameters.EvalParameters{
		Title:      "command line",
		Degree:     ms.Degree,
		NumCtrlPts: ms.NumCtrlPts,
		DerivOrder: ms.DerivOrder,
		SampleStep: ms.SampleStep,
	}
	if len(ms.ParamFile) != 0 {
		data, err := os.ReadFile(ms.ParamFile)
		if err != nil {
			fmt.Printf("error reading input parameters file: %s\n", err.Error())
			os.Exit(1)
		}
		if err = ep.Parse(data); err != nil {
			fmt.Printf("error parsing input parameters file: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if err := ep.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func RunSample(ms *ModelSample) {
	ep := processInput(ms)
	ep.Print()
	kv, err := ep.Knots()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%v\t= knot vector\n", kv)
	for u := range utils.FRange(0, 1, ep.SampleStep) {
		span := bspline.FindSpan(ep.Degree, kv, u)
		if ep.DerivOrder == 0 {
			bfuncs := bspline.BasisFunctions(ep.Degree, kv, span, u)
			fmt.Printf("u = %8.5f  span = %d  N = %v\n", u, span, bfuncs)
			continue
		}
		ders := bspline.BasisFunctionDers(ep.Degree, kv, span, u, ep.DerivOrder)
		fmt.Printf("u = %8.5f  span = %d  ders =\n%v\n", u, span, ders)
	}
}
