package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gomguk-paper/Gomguk-BE/internal/db"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// demoPapers are well-known highly cited AI papers used to exercise the API
// before the first crawl has run.
func demoPapers() []*types.Paper {
	now := time.Now().UTC()
	return []*types.Paper{
		{
			ID:            "arxiv_1706.03762",
			ArxivID:       "1706.03762",
			Title:         "Attention Is All You Need",
			Authors:       []string{"Vaswani, A.", "Shazeer, N.", "Parmar, N.", "Uszkoreit, J.", "Jones, L.", "Gomez, A. N.", "Kaiser, L.", "Polosukhin, I."},
			Year:          2017,
			Venue:         "NeurIPS",
			Tags:          []string{"cs.CL", "cs.LG", "cs.AI"},
			Abstract:      "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks that include an encoder and a decoder. The best performing models also connect the encoder and decoder through an attention mechanism. We propose a new simple network architecture, the Transformer, based solely on attention mechanisms, dispensing with recurrence and convolutions entirely. Experiments on two machine translation tasks show that these models are superior in quality while being more parallelizable and requiring significantly less time to train.",
			PDFURL:        "https://arxiv.org/pdf/1706.03762",
			ArxivURL:      "https://arxiv.org/abs/1706.03762",
			PublishedDate: date(2017, 6, 12),
			UpdatedDate:   date(2017, 6, 12),
			Citations:     85000,
			TrendingScore: 95.0,
			RecencyScore:  60.0,
			CrawledAt:     now,
		},
		{
			ID:            "arxiv_1810.04805",
			ArxivID:       "1810.04805",
			Title:         "BERT: Pre-training of Deep Bidirectional Transformers for Language Understanding",
			Authors:       []string{"Devlin, J.", "Chang, M.-W.", "Lee, K.", "Toutanova, K."},
			Year:          2018,
			Venue:         "NAACL",
			Tags:          []string{"cs.CL", "cs.LG"},
			Abstract:      "We introduce a new language representation model called BERT, which stands for Bidirectional Encoder Representations from Transformers. Unlike recent language representation models, BERT is designed to pre-train deep bidirectional representations from unlabeled text by jointly conditioning on both left and right context in all layers. As a result, the pre-trained BERT model can be fine-tuned with just one additional output layer to create state-of-the-art models for a wide range of tasks, such as question answering and language inference, without substantial task-specific architecture modifications.",
			PDFURL:        "https://arxiv.org/pdf/1810.04805",
			ArxivURL:      "https://arxiv.org/abs/1810.04805",
			PublishedDate: date(2018, 10, 11),
			UpdatedDate:   date(2019, 5, 24),
			Citations:     65000,
			TrendingScore: 88.0,
			RecencyScore:  65.0,
			CrawledAt:     now,
		},
		{
			ID:            "arxiv_2006.11239",
			ArxivID:       "2006.11239",
			Title:         "Denoising Diffusion Probabilistic Models",
			Authors:       []string{"Ho, J.", "Jain, A.", "Abbeel, P."},
			Year:          2020,
			Venue:         "NeurIPS",
			Tags:          []string{"cs.CV", "cs.LG", "stat.ML"},
			Abstract:      "We present high quality image synthesis results using diffusion probabilistic models, a class of latent variable models inspired by considerations from nonequilibrium thermodynamics. Our best results are obtained by training on a weighted variational bound designed according to a novel connection between diffusion probabilistic models and denoising score matching with Langevin dynamics, and our models naturally admit a progressive lossy decompression scheme that can be interpreted as a generalization of autoregressive decoding.",
			PDFURL:        "https://arxiv.org/pdf/2006.11239",
			ArxivURL:      "https://arxiv.org/abs/2006.11239",
			PublishedDate: date(2020, 6, 19),
			UpdatedDate:   date(2020, 12, 16),
			Citations:     12000,
			TrendingScore: 92.0,
			RecencyScore:  75.0,
			CrawledAt:     now,
		},
		{
			ID:            "arxiv_2010.11929",
			ArxivID:       "2010.11929",
			Title:         "An Image is Worth 16x16 Words: Transformers for Image Recognition at Scale",
			Authors:       []string{"Dosovitskiy, A.", "Beyer, L.", "Kolesnikov, A.", "Weissenborn, D.", "Zhai, X.", "Unterthiner, T.", "Dehghani, M.", "Minderer, M.", "Heigold, G.", "Gelly, S.", "Uszkoreit, J.", "Houlsby, N."},
			Year:          2020,
			Venue:         "ICLR",
			Tags:          []string{"cs.CV", "cs.LG", "cs.AI"},
			Abstract:      "While the Transformer architecture has become the de-facto standard for natural language processing tasks, its applications to computer vision remain limited. In vision, attention is either applied in conjunction with convolutional networks, or used to replace certain components of convolutional networks while keeping their overall structure in place. We show that this reliance on CNNs is not necessary and a pure transformer applied directly to sequences of image patches can perform very well on image classification tasks.",
			PDFURL:        "https://arxiv.org/pdf/2010.11929",
			ArxivURL:      "https://arxiv.org/abs/2010.11929",
			PublishedDate: date(2020, 10, 22),
			UpdatedDate:   date(2021, 6, 2),
			Citations:     22000,
			TrendingScore: 90.0,
			RecencyScore:  80.0,
			CrawledAt:     now,
		},
		{
			ID:            "arxiv_2303.08774",
			ArxivID:       "2303.08774",
			Title:         "GPT-4 Technical Report",
			Authors:       []string{"OpenAI"},
			Year:          2023,
			Venue:         "arXiv",
			Tags:          []string{"cs.CL", "cs.AI", "cs.LG"},
			Abstract:      "We report the development of GPT-4, a large-scale, multimodal model which can accept image and text inputs and produce text outputs. While less capable than humans in many real-world scenarios, GPT-4 exhibits human-level performance on various professional and academic benchmarks, including passing a simulated bar exam with a score around the top 10% of test takers. GPT-4 is a Transformer-based model pre-trained to predict the next token in a document. The post-training alignment process results in improved performance on measures of factuality and adherence to desired behavior.",
			PDFURL:        "https://arxiv.org/pdf/2303.08774",
			ArxivURL:      "https://arxiv.org/abs/2303.08774",
			PublishedDate: date(2023, 3, 15),
			UpdatedDate:   date(2023, 3, 15),
			Citations:     8000,
			TrendingScore: 98.0,
			RecencyScore:  95.0,
			CrawledAt:     now,
		},
	}
}

func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.New(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}

	paperRepo := repos.NewPaperRepo(dbService.DB(), log)

	papers := demoPapers()
	if err := paperRepo.Upsert(context.Background(), nil, papers); err != nil {
		log.Fatal("Seeding failed", "error", err)
	}
	log.Info("Demo papers seeded", "count", len(papers))
}
