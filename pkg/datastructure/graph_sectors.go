package datastructure

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// sector record: first node id (int32), node count (uint16). sectors are stored row by row, south to north.
const (
	SECTOR_OFFSET_FIRST_NODE = 0
	SECTOR_OFFSET_NODE_COUNT = SECTOR_OFFSET_FIRST_NODE + 4
	SECTOR_BYTES             = SECTOR_OFFSET_NODE_COUNT + 2

	SECTORS_PER_SIDE = 128
	SECTOR_COUNT     = SECTORS_PER_SIDE * SECTORS_PER_SIDE
	SECTOR_WIDTH     = geo.SWISS_WIDTH / SECTORS_PER_SIDE
	SECTOR_HEIGHT    = geo.SWISS_HEIGHT / SECTORS_PER_SIDE
)

// Sector. nodes [StartNodeId, EndNodeId).
type Sector struct {
	StartNodeId Index
	EndNodeId   Index
}

type GraphSectors struct {
	buffer []byte
}

func (gs GraphSectors) sector(index int) Sector {
	i := index * SECTOR_BYTES
	start := Index(binary.BigEndian.Uint32(gs.buffer[i+SECTOR_OFFSET_FIRST_NODE:]))
	count := Index(binary.BigEndian.Uint16(gs.buffer[i+SECTOR_OFFSET_NODE_COUNT:]))
	return Sector{StartNodeId: start, EndNodeId: start + count}
}

// SectorIndexOf. row-major index of the sector containing (e, n), points on the far borders go to the last sector.
func SectorIndexOf(e, n float64) int {
	return gridX(e) + SECTORS_PER_SIDE*gridY(n)
}

// SectorOf. sector of p once its coordinates are rounded to Q28.4 as in a node record. writers must order nodes
// with it, a point less than 1/32 m below a sector border is stored on the border.
func SectorOf(p geo.PointCh) int {
	return SectorIndexOf(storedCoordinate(p.E()), storedCoordinate(p.N()))
}

func storedCoordinate(v float64) float64 {
	return util.Q28AsFloat64(util.Q28OfFloat64(v))
}

// gridX and gridY clamp before converting so that infinite bounds stay on the grid.
func gridX(e float64) int {
	return int(util.Clamp(0, math.Floor((e-geo.SWISS_MIN_E)/SECTOR_WIDTH), SECTORS_PER_SIDE-1))
}

func gridY(n float64) int {
	return int(util.Clamp(0, math.Floor((n-geo.SWISS_MIN_N)/SECTOR_HEIGHT), SECTORS_PER_SIDE-1))
}

// SectorsInArea. every sector intersecting the square of half side distance centered on center.
func (gs GraphSectors) SectorsInArea(center geo.PointCh, distance float64) []Sector {
	area := r2.RectFromCenterSize(center.R2(), r2.Point{X: 2 * distance, Y: 2 * distance})
	if area.IsEmpty() {
		return nil
	}

	xMin, xMax := gridX(area.X.Lo), gridX(area.X.Hi)
	yMin, yMax := gridY(area.Y.Lo), gridY(area.Y.Hi)

	sectors := make([]Sector, 0, (xMax-xMin+1)*(yMax-yMin+1))
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			sectors = append(sectors, gs.sector(x+SECTORS_PER_SIDE*y))
		}
	}
	return sectors
}
