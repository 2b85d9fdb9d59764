package storage

import (
	"time"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// Seed records for the ephemeral backend: demonstration portfolio
// content so a zero-setup deployment is not an empty site.

func strptr(s string) *string { return &s }

func seedProjects() []models.Project {
	return []models.Project{
		{
			ID:              "project-1",
			Title:           "Smart IoT Temperature Monitoring System",
			Description:     "A comprehensive temperature monitoring solution using wireless sensors and real-time data analytics.",
			LongDescription: strptr("Developed a complete IoT ecosystem for industrial temperature monitoring featuring wireless sensor networks, real-time data collection, and predictive maintenance algorithms. The system includes custom PCB design, embedded firmware, and cloud-based analytics platform."),
			ImageURL:        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=600",
			Technologies:    []string{"Arduino", "LoRaWAN", "React", "Node.js", "MongoDB"},
			Category:        "IoT Solutions",
			Status:          "completed",
			ProjectURL:      strptr("#"),
			GithubURL:       strptr("#"),
			CreatedAt:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Gallery:         []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=600"},
		},
		{
			ID:              "project-2",
			Title:           "Advanced Power Management Circuit",
			Description:     "High-efficiency switch-mode power supply with digital control and monitoring capabilities.",
			LongDescription: strptr("Designed and implemented a state-of-the-art SMPS with digital control algorithms, achieving 95% efficiency across wide load ranges. Features include real-time monitoring, adaptive control, and comprehensive protection mechanisms."),
			ImageURL:        "https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=800&h=600",
			Technologies:    []string{"Altium Designer", "STM32", "C++", "MATLAB", "SPICE"},
			Category:        "Power Electronics",
			Status:          "completed",
			ProjectURL:      strptr("#"),
			GithubURL:       strptr("#"),
			CreatedAt:       time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
			Gallery:         []string{"https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=800&h=600"},
		},
	}
}

func seedArticles() []models.Article {
	return []models.Article{
		{
			ID:          "article-1",
			Title:       "Understanding Power Electronics in Modern Applications",
			Description: "A comprehensive guide to power electronic systems and their applications in renewable energy and electric vehicles.",
			Content:     "Power electronics form the backbone of modern electrical systems...",
			ImageURL:    "https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=800&h=600",
			Category:    "Technical Insights",
			Tags:        []string{"Power Electronics", "Renewable Energy", "Electric Vehicles"},
			ReadTime:    "8 min",
			PublishedAt: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}
