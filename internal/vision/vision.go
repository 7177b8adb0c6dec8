package vision

import (
	"context"
	"fmt"
	"sync"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"github.com/quickagent/quickagent/internal/config"
	"github.com/quickagent/quickagent/internal/models"
)

// maxWebResults bounds the similar-image and matching-page lists
const maxWebResults = 8

// Service runs web detection on uploaded images via Google Cloud Vision.
// The underlying client is constructed lazily on first use and shared for
// the lifetime of the process.
type Service struct {
	credentialsFile string

	mu     sync.Mutex
	client *gvision.ImageAnnotatorClient
}

// New returns a Service using the given Vision configuration
func New(cfg config.VisionConfig) *Service {
	return &Service{credentialsFile: cfg.CredentialsFile}
}

// annotator returns the shared Vision client, constructing it on first use.
// Construction failures are not cached so a later request can retry.
func (s *Service) annotator(ctx context.Context) (*gvision.ImageAnnotatorClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	var opts []option.ClientOption
	if s.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentialsFile))
	}

	client, err := gvision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	s.client = client

	return client, nil
}

// Scan runs web detection on the raw image bytes and reshapes the result
func (s *Service) Scan(ctx context.Context, image []byte) (*models.ScanResponse, error) {
	client, err := s.annotator(ctx)
	if err != nil {
		return nil, err
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_WEB_DETECTION},
				},
			},
		},
	}

	resp, err := client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("web detection request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return responseFromDetection(nil), nil
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("web detection error: %s", resp.Responses[0].Error.Message)
	}

	return responseFromDetection(resp.Responses[0].WebDetection), nil
}

// responseFromDetection maps a web detection result onto the API shape.
// Absent lists become empty lists; similar and pages keep the first 8
// entries in their original order.
func responseFromDetection(web *visionpb.WebDetection) *models.ScanResponse {
	out := &models.ScanResponse{
		BestLabels: []string{},
		Similar:    []models.SimilarImage{},
		Pages:      []models.MatchingPage{},
	}
	if web == nil {
		return out
	}

	for _, label := range web.BestGuessLabels {
		out.BestLabels = append(out.BestLabels, label.GetLabel())
	}
	if len(out.BestLabels) > 0 {
		guess := out.BestLabels[0]
		out.Guess = &guess
	}

	for i, img := range web.VisuallySimilarImages {
		if i == maxWebResults {
			break
		}
		out.Similar = append(out.Similar, models.SimilarImage{URL: img.GetUrl()})
	}

	for i, page := range web.PagesWithMatchingImages {
		if i == maxWebResults {
			break
		}
		out.Pages = append(out.Pages, models.MatchingPage{
			URL:       page.GetUrl(),
			PageTitle: page.GetPageTitle(),
		})
	}

	return out
}
