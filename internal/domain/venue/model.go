package venue

type Venue struct {
	ID           int64
	Name         string
	LocationNote string
}

// SportVenue describes where a sport is played during the festival.
type SportVenue struct {
	Sport        string
	Name         string
	LocationNote string
	Description  string
}

// SportVenues is the fixed guide shown on the event site, in display order.
func SportVenues() []SportVenue {
	return []SportVenue{
		{Sport: "풋살", Name: "교내 풋살장", LocationNote: "체육관 1층", Description: "실내 풋살 경기장"},
		{Sport: "농구", Name: "교내 농구장", LocationNote: "체육관 2층", Description: "실내 농구 경기장"},
		{Sport: "피구", Name: "교내 농구장", LocationNote: "체육관 2층", Description: "농구장에서 피구 경기 진행"},
		{Sport: "족구", Name: "교내 농구장", LocationNote: "체육관 2층", Description: "농구장에서 족구 경기 진행"},
		{Sport: "탁구", Name: "교내 탁구장", LocationNote: "체육관 3층", Description: "실내 탁구 경기장"},
		{Sport: "줄다리기", Name: "광운스퀘어", LocationNote: "교내 중앙 광장", Description: "야외 줄다리기 경기장"},
		{Sport: "LOL", Name: "레드포스 광운대점", LocationNote: "교내 PC방", Description: "리그 오브 레전드 e스포츠 경기장"},
		{Sport: "FC온라인", Name: "레드포스 광운대점", LocationNote: "교내 PC방", Description: "피파 온라인 e스포츠 경기장"},
	}
}
