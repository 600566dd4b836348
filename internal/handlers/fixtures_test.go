package handlers

import "github.com/akolanti/ProposalFeedback/internal/config"

func configFixture() config.ClientConfig {
	return config.ClientConfig{
		KakaoJsKey: "kakao-key",
		Firebase:   config.FirebaseConfig{ProjectID: "demo-project", AppID: "1:2:web:3"},
	}
}
