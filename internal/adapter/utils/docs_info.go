package utils

//run redis (optional, proposals fall back to memory)
//docker run -p 6379:6379 -d redis

//corpus
//drop .pdf/.docx/.txt files into ./data or point CORPUS_DIR somewhere else

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
