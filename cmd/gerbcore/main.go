/*
gerbcore compiles one Gerber (RS274X) command stream into draw items
and renders them to a PNG image and a pen plotter command file.
*/
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/viper"

	"github.com/alexander-guesnon/gerbcore/compiler"
	"github.com/alexander-guesnon/gerbcore/configurator"
	"github.com/alexander-guesnon/gerbcore/gerbfile"
	"github.com/alexander-guesnon/gerbcore/plotter"
	"github.com/alexander-guesnon/gerbcore/render"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("usage: gerbcore [flags] <input.gbr>")
		os.Exit(1)
	}
	inFileName := flag.Arg(0)

	v := viper.New()
	configurator.SetDefaults(v)
	if err := configurator.ProcessConfigFile(v); err != nil {
		glog.Warning("configuration file error, using defaults: ", err)
	}

	timeStamp := time.Now()
	buf, err := os.ReadFile(inFileName)
	checkError(err, 301)

	gerber, err := gerbfile.Process(inFileName, buf)
	checkError(err, 302)
	fmt.Println("compilation took " + time.Since(timeStamp).String())

	for _, w := range gerber.Warnings() {
		fmt.Println("warning: " + w)
	}
	fmt.Println(strconv.Itoa(len(gerber.Items)) + " draw items compiled from " + inFileName)

	if v.GetBool(configurator.CfgCommonPrintAperturesInfo) {
		fmt.Println(strconv.Itoa(gerber.Tools.Len()) + " apertures defined")
	}

	plt := plotter.NewPlotter()
	plt.SetOutFileName(v.GetString(configurator.CfgPlotterOutFile))

	rc := render.NewRender(plt, v, compiler.ItemsBounds(gerber.Items))
	timeStamp = time.Now()
	rc.DrawFrame()
	rc.Draw(gerber.Items)
	plt.Stop()
	fmt.Println("rendering took " + time.Since(timeStamp).String())

	if v.GetBool(configurator.CfgRendererGeneratePNG) {
		savePng(v.GetString(configurator.CfgRendererOutFile), rc)
	}

	if v.GetBool(configurator.CfgCommonPrintStatistic) {
		printStatistic(rc)
	}
	if v.GetBool(configurator.CfgCommonPrintMemoryInfo) {
		printMemoryInfo()
	}
	glog.Flush()
}

func savePng(fileName string, rc *render.Render) {
	outFile, err := os.Create(fileName)
	checkError(err, 401)
	defer outFile.Close()
	err = png.Encode(outFile, rc.Img)
	checkError(err, 402)
	fmt.Println("image written to " + fileName)
}

func printStatistic(rc *render.Render) {
	fmt.Println("lines drawn:       " + strconv.Itoa(rc.LineBresCounter))
	fmt.Println("total line length: " + strconv.FormatFloat(rc.LineBresLen, 'f', 1, 64))
	fmt.Println("circles drawn:     " + strconv.Itoa(rc.CircleBresCounter))
	fmt.Println("filled rectangles: " + strconv.Itoa(rc.FilledRctCounter))
	fmt.Println("obrounds:          " + strconv.Itoa(rc.ObRoundCounter))
	fmt.Println("regions:           " + strconv.Itoa(rc.RegionCounter))
	fmt.Println("pen moves:         " + strconv.Itoa(rc.MovePenCounters))
	fmt.Println("pen move distance: " + strconv.FormatFloat(rc.MovePenDistance, 'f', 1, 64))
}

func printMemoryInfo() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println("heap in use: " + strconv.FormatUint(m.HeapInuse, 10))
	fmt.Println("total alloc: " + strconv.FormatUint(m.TotalAlloc, 10))
}

func checkError(err error, exitCode int) {
	if err != nil {
		fmt.Println(err)
		os.Exit(exitCode)
	}
}
