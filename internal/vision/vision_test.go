package vision

import (
	"fmt"
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
)

func webImages(n int) []*visionpb.WebDetection_WebImage {
	images := make([]*visionpb.WebDetection_WebImage, n)
	for i := range images {
		images[i] = &visionpb.WebDetection_WebImage{Url: fmt.Sprintf("https://img.example/%d", i)}
	}
	return images
}

func webPages(n int) []*visionpb.WebDetection_WebPage {
	pages := make([]*visionpb.WebDetection_WebPage, n)
	for i := range pages {
		pages[i] = &visionpb.WebDetection_WebPage{
			Url:       fmt.Sprintf("https://page.example/%d", i),
			PageTitle: fmt.Sprintf("Page %d", i),
		}
	}
	return pages
}

func TestResponseFromDetection(t *testing.T) {
	tests := []struct {
		name        string
		web         *visionpb.WebDetection
		wantGuess   string
		wantNilG    bool
		wantLabels  int
		wantSimilar int
		wantPages   int
	}{
		{
			name:     "nil detection yields empty lists",
			web:      nil,
			wantNilG: true,
		},
		{
			name:     "empty detection yields empty lists",
			web:      &visionpb.WebDetection{},
			wantNilG: true,
		},
		{
			name: "guess is first best label",
			web: &visionpb.WebDetection{
				BestGuessLabels: []*visionpb.WebDetection_WebLabel{
					{Label: "red sneakers"},
					{Label: "running shoes"},
				},
			},
			wantGuess:  "red sneakers",
			wantLabels: 2,
		},
		{
			name: "lists truncated to eight entries",
			web: &visionpb.WebDetection{
				VisuallySimilarImages:   webImages(12),
				PagesWithMatchingImages: webPages(9),
			},
			wantNilG:    true,
			wantSimilar: 8,
			wantPages:   8,
		},
		{
			name: "short lists kept whole",
			web: &visionpb.WebDetection{
				VisuallySimilarImages:   webImages(3),
				PagesWithMatchingImages: webPages(2),
			},
			wantNilG:    true,
			wantSimilar: 3,
			wantPages:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := responseFromDetection(tt.web)

			if tt.wantNilG {
				if got.Guess != nil {
					t.Errorf("Guess = %q, want nil", *got.Guess)
				}
			} else if got.Guess == nil || *got.Guess != tt.wantGuess {
				t.Errorf("Guess = %v, want %q", got.Guess, tt.wantGuess)
			}

			if got.BestLabels == nil || got.Similar == nil || got.Pages == nil {
				t.Fatal("Lists must never be nil")
			}
			if len(got.BestLabels) != tt.wantLabels {
				t.Errorf("BestLabels length = %d, want %d", len(got.BestLabels), tt.wantLabels)
			}
			if len(got.Similar) != tt.wantSimilar {
				t.Errorf("Similar length = %d, want %d", len(got.Similar), tt.wantSimilar)
			}
			if len(got.Pages) != tt.wantPages {
				t.Errorf("Pages length = %d, want %d", len(got.Pages), tt.wantPages)
			}
		})
	}
}

func TestResponseFromDetectionPreservesOrder(t *testing.T) {
	got := responseFromDetection(&visionpb.WebDetection{
		VisuallySimilarImages:   webImages(12),
		PagesWithMatchingImages: webPages(9),
	})

	for i, similar := range got.Similar {
		want := fmt.Sprintf("https://img.example/%d", i)
		if similar.URL != want {
			t.Errorf("Similar[%d].URL = %q, want %q", i, similar.URL, want)
		}
	}
	for i, page := range got.Pages {
		wantURL := fmt.Sprintf("https://page.example/%d", i)
		wantTitle := fmt.Sprintf("Page %d", i)
		if page.URL != wantURL || page.PageTitle != wantTitle {
			t.Errorf("Pages[%d] = %+v, want url %q title %q", i, page, wantURL, wantTitle)
		}
	}
}
