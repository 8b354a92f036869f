package engine

import (
	"gridwire/matrix"
	"gridwire/model"
)

// Assimilate is the single reconciliation entry point run after any
// structural edit: for every connector in connList not already
// absorbed by an earlier merge in this same call, it fuses it to a
// fixpoint (ShortAndMergeConnectors, which itself runs RepairSegAndJunc
// on every resulting master), then reconciles every port in drawn that
// now touches that master's segments against it -- not only the ports
// it already knew about. It returns the distinct resulting masters.
func Assimilate(drawn *model.Drawn, mtx *matrix.RoutingMatrix, connList []*model.Connector) []*model.Connector {
	var results []*model.Connector
	seen := map[*model.Connector]bool{}

	for _, c := range connList {
		if drawn.ConnIndex(c) == -1 {
			continue
		}
		masters := ShortAndMergeConnectors(drawn, mtx, []*model.Connector{c})
		for _, m := range masters {
			if seen[m] {
				continue
			}
			seen[m] = true
			ConnectOverlapPortsForConn(drawn, mtx, m, portsTouchingConnector(drawn, m))
			results = append(results, m)
		}
	}
	return results
}
