package handlers

import (
	"mypodinfo/domain"
	"mypodinfo/service"
)

// toPodInfoResponse converts domain pod info to API response.
func toPodInfoResponse(info domain.PodInfo) PodInfoResponse {
	return PodInfoResponse{
		Id:           string(info.ID),
		RequestCount: info.RequestCount,
	}
}

// toPodsResponse converts domain members to API response. Never returns a nil Pods slice.
func toPodsResponse(members []domain.Member) PodsResponse {
	out := make([]PodInfo, 0, len(members))
	for _, m := range members {
		var appname *string
		if m.AppName != "" {
			appname = service.Ptr(m.AppName)
		}
		out = append(out, PodInfo{
			Id:       string(m.ID),
			Appname:  appname,
			LastSeen: m.LastSeen,
		})
	}
	return PodsResponse{Pods: out}
}
