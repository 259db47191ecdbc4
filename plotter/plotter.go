/*
 Generates a stream of EM-7052 pen plotter commands
*/
package plotter

import (
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/alexander-guesnon/gerbcore/gerbbase"
)

/*
	Plotter current status and statistic
*/
type Plotter struct {
	currentPosX     int
	currentPosY     int
	outFileName     string
	outStringBuffer []string
}

func NewPlotter() *Plotter {
	retVal := new(Plotter)
	retVal.Init()
	return retVal
}

/*
	Initializes Plotter object and generates plotter reset command
*/
func (plotter *Plotter) Init() string {
	plotter.currentPosX = 0
	plotter.currentPosY = 0
	plotter.outStringBuffer = make([]string, 0)
	retVal := "J\n"
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}

func (plotter *Plotter) SetOutFileName(outFileName string) {
	plotter.outFileName = outFileName
}

/*
	Deletes unnecessary MA commands
*/
func (plotter *Plotter) squeeze() {
	tmpString := make([]string, 0)
	var lastMA string
	for a := range plotter.outStringBuffer {
		if strings.HasPrefix(plotter.outStringBuffer[a], "MA ") {
			lastMA = plotter.outStringBuffer[a]
		} else {
			if len(lastMA) > 0 {
				tmpString = append(tmpString, lastMA)
			}
			tmpString = append(tmpString, plotter.outStringBuffer[a])
			lastMA = ""
		}
	}
	plotter.outStringBuffer = tmpString
}

/*
	Finalizes command stream and writes file to disk
*/
func (plotter *Plotter) Stop() {
	_ = plotter.TakePen(0)
	_ = plotter.MoveTo(0, 0)
	plotter.squeeze()
	outputFile, err := os.OpenFile(plotter.outFileName, os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		glog.Fatal(err)
	}
	defer outputFile.Close()
	if err = outputFile.Truncate(0); err != nil {
		glog.Fatal(err)
	}
	for _, s := range plotter.outStringBuffer {
		if _, err = outputFile.WriteString(s); err != nil {
			glog.Fatal(err)
		}
	}
	outputFile.Sync()
	plotter.outStringBuffer = nil
}

func (plotter *Plotter) MoveTo(x, y int) string {
	retVal := plotter.moveTo(x, y)
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}

func (plotter *Plotter) moveTo(x, y int) string {
	plotter.currentPosX = x
	plotter.currentPosY = y
	return "MA " + strconv.Itoa(x) + " , " + strconv.Itoa(y) + "\n"
}

func (plotter *Plotter) DrawLine(x0, y0, x1, y1 int) string {
	var retVal string
	if (plotter.currentPosX != x0) || (plotter.currentPosY != y0) {
		retVal = plotter.moveTo(x0, y0)
		plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	}
	retVal = "DA " + strconv.Itoa(x1) + " , " + strconv.Itoa(y1) + "\n"
	plotter.currentPosX = x1
	plotter.currentPosY = y1
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}

func (plotter *Plotter) Circle(xc, yc, r int) string {
	retVal := plotter.moveTo(xc+r, yc) // move to the rightmost circle point
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	retVal = "D C" + strconv.Itoa(r) + " , 0 , 360\n"
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	retVal = plotter.moveTo(xc, yc)
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}

func (plotter *Plotter) Arc(x0, y0, x1, y1, radius, fi0, fi1 int, ipm gerbbase.IPmode) string {
	var retVal string
	if (plotter.currentPosX != x0) || (plotter.currentPosY != y0) {
		glog.Error("Arc position discrepance: (currX, currY) (x0, y0) (" +
			strconv.Itoa(plotter.currentPosX) + "," + strconv.Itoa(plotter.currentPosY) + ") (" +
			strconv.Itoa(x0) + "," + strconv.Itoa(y0) + ")")
		retVal = plotter.moveTo(x0, y0)
		plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	}
	if ipm == gerbbase.IPModeCwC {
		radius = -radius
	}
	retVal = "DC " + strconv.Itoa(radius) + " , " + strconv.Itoa(fi0) + " , " + strconv.Itoa(fi1) + "\n"
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	retVal = plotter.moveTo(x1, y1)
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}

func (plotter *Plotter) TakePen(penNumber int) string {
	if penNumber < 0 || penNumber > 4 {
		glog.Fatal("Bad pen number specified!")
	}
	retVal := "P" + strconv.Itoa(penNumber) + "\n"
	plotter.outStringBuffer = append(plotter.outStringBuffer, retVal)
	return retVal
}
