package avro

import "strconv"

func indexSegment(i int) string {
	return strconv.Itoa(i)
}
