package catalog

import (
	"github.com/hoangtrungvu/musicstream/internal/domain"
)

// builtinTracks is the static track set shipped with the client.
var builtinTracks = []domain.Track{
	{
		ID:            "song1",
		Title:         "Chịu cách mình nói thua",
		Artist:        "RHYDER ft. BAN, COOLKID",
		CoverRef:      "/assets/images/chiucachminhnoithua.jpg",
		AudioRef:      "/assets/audio/chiucachminhnoithua.mp3",
		DurationLabel: "4:46",
		Genre:         "Pop",
		Year:          2023,
	},
	{
		ID:            "song2",
		Title:         "Tò Tí Te Remix",
		Artist:        "Wren Evans",
		CoverRef:      "/assets/images/0.jpg",
		AudioRef:      "/assets/audio/toteti.mp3",
		DurationLabel: "3:52",
		Genre:         "Electronic",
		Year:          2023,
	},
	{
		ID:            "song3",
		Title:         "Đâu Còn Đây",
		Artist:        "LEE KEN x NAL",
		CoverRef:      "/assets/images/1.jpg",
		AudioRef:      "/assets/audio/dauconday.mp3",
		DurationLabel: "2:56",
		Genre:         "Pop",
		Year:          2023,
	},
	{
		ID:            "song4",
		Title:         "Despacito",
		Artist:        "Luis Fonsi ft. Daddy Yankee",
		CoverRef:      "/assets/images/2.jpg",
		AudioRef:      "/assets/audio/Despacito.mp3",
		DurationLabel: "3:47",
		Genre:         "Latin",
		Year:          2017,
	},
	{
		ID:            "song5",
		Title:         "Alo Alo",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/aloalo.jpg",
		AudioRef:      "/assets/audio/AloAlo.mp3",
		DurationLabel: "3:30",
		Genre:         "Pop",
		Year:          2023,
	},
	{
		ID:            "song6",
		Title:         "Em Về Đi Em",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/evde.jpg",
		AudioRef:      "/assets/audio/EmVeDiEm.mp3",
		DurationLabel: "4:15",
		Genre:         "Ballad",
		Year:          2023,
	},
	{
		ID:            "song7",
		Title:         "Gửi Tình Yêu Nhỏ",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/gtyn.jpg",
		AudioRef:      "/assets/audio/GuiTinhYeuNho.mp3",
		DurationLabel: "3:45",
		Genre:         "Ballad",
		Year:          2023,
	},
	{
		ID:            "song8",
		Title:         "Hết Nhạc Con Về",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/hncv.jpg",
		AudioRef:      "/assets/audio/HetNhacConVe.mp3",
		DurationLabel: "4:20",
		Genre:         "Folk",
		Year:          2023,
	},
	{
		ID:            "song9",
		Title:         "His Story",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/hisstory.jpg",
		AudioRef:      "/assets/audio/HisStory.mp3",
		DurationLabel: "3:58",
		Genre:         "R&B",
		Year:          2023,
	},
	{
		ID:            "song10",
		Title:         "Tình Ta Hai Ngã",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/tt2n.jpg",
		AudioRef:      "/assets/audio/TinhTaHaiNga.mp3",
		DurationLabel: "4:12",
		Genre:         "Ballad",
		Year:          2023,
	},
	{
		ID:            "song11",
		Title:         "Yêu 1 Người Có Lẽ",
		Artist:        "Various Artists",
		CoverRef:      "/assets/images/y1ncl.jpg",
		AudioRef:      "/assets/audio/Yeu1NguoiCoLe.mp3",
		DurationLabel: "3:33",
		Genre:         "Pop",
		Year:          2023,
	},
}
