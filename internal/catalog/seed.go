package catalog

import "github.com/bookhaven/bookhaven/internal/entities"

// seedBooks is the built-in catalog used when no persisted state exists.
// Book ids "1".."8" and review ids "101".."112" live in disjoint id spaces;
// generated ids must never collide with either.
var seedBooks = []entities.Book{
	{
		ID:          "1",
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Year:        "1925",
		CoverURL:    "https://m.media-amazon.com/images/I/71FTb9X6wsL._AC_UF1000,1000_QL80_.jpg",
		Genre:       "Classic",
		Description: "Set in the Jazz Age on Long Island, the novel depicts narrator Nick Carraway's interactions with mysterious millionaire Jay Gatsby and Gatsby's obsession to reunite with his former lover, Daisy Buchanan.",
		Reviews: []entities.Review{
			{ID: "101", UserName: "Ayesha Khan", Rating: 5, Comment: "A timeless classic that captures the essence of the Roaring Twenties.", Date: "2023-04-15"},
		},
	},
	{
		ID:          "2",
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Year:        "1960",
		CoverURL:    "https://m.media-amazon.com/images/I/81aY1lxk+9L._AC_UF1000,1000_QL80_.jpg",
		Genre:       "Classic",
		Description: "The story of a young girl confronting racial injustice in a small Southern town during the Great Depression as she observes her father, a lawyer, defend a Black man falsely accused of raping a white woman.",
		Reviews: []entities.Review{
			{ID: "102", UserName: "Ahmed Raza", Rating: 5, Comment: "One of the most impactful novels about social justice ever written.", Date: "2023-05-20"},
			{ID: "109", UserName: "Nadia Hussain", Rating: 4, Comment: "Scout's voice makes a difficult subject approachable without softening it.", Date: "2023-08-02"},
		},
	},
	{
		ID:          "3",
		Title:       "1984",
		Author:      "George Orwell",
		Year:        "1949",
		CoverURL:    "https://m.media-amazon.com/images/I/91SZSW8qSsL._AC_UF1000,1000_QL80_.jpg",
		Genre:       "Dystopian",
		Description: "A dystopian novel set in a totalitarian society where independent thinking is persecuted and there is constant surveillance of citizens.",
		Reviews: []entities.Review{
			{ID: "103", UserName: "Sana Malik", Rating: 4, Comment: "Eerily prescient in many ways. A must-read for understanding modern surveillance issues.", Date: "2023-03-10"},
			{ID: "110", UserName: "Imran Sheikh", Rating: 5, Comment: "Newspeak alone is worth the read. The appendix ties the whole thing together.", Date: "2023-09-21"},
		},
	},
	{
		ID:          "4",
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Year:        "1937",
		CoverURL:    "https://m.media-amazon.com/images/I/710+HcoP38L._AC_UF1000,1000_QL80_.jpg",
		Genre:       "Fantasy",
		Description: "Bilbo Baggins, a comfort-loving hobbit, is whisked away on an unexpected journey by Gandalf the Grey and a company of dwarves seeking to reclaim their ancestral home from the dragon Smaug.",
		Reviews: []entities.Review{
			{ID: "104", UserName: "Bilal Ahmed", Rating: 5, Comment: "The perfect gateway into fantasy literature. Tolkien's world-building is unmatched.", Date: "2023-01-05"},
		},
	},
	{
		ID:          "5",
		Title:       "Artificial Intelligence: A Modern Approach",
		Author:      "Stuart Russell, Peter Norvig",
		Year:        "2020",
		CoverURL:    "https://m.media-amazon.com/images/I/51-S9Z+w96L._SX440_BO1,204,203,200_.jpg",
		Genre:       "Computer Science",
		Description: "The leading textbook in Artificial Intelligence, used in over 1500 universities. It provides a comprehensive overview of the field, from machine learning to robotics, computer vision, and beyond.",
		Reviews: []entities.Review{
			{ID: "105", UserName: "Fatima Ali", Rating: 5, Comment: "The definitive AI textbook. Comprehensive, well-structured, and accessible to both beginners and experts.", Date: "2023-06-12"},
			{ID: "111", UserName: "Usman Tariq", Rating: 4, Comment: "Dense but rewarding. The exercises are where the real learning happens.", Date: "2023-10-08"},
		},
	},
	{
		ID:          "6",
		Title:       "Deep Learning",
		Author:      "Ian Goodfellow, Yoshua Bengio, Aaron Courville",
		Year:        "2016",
		CoverURL:    "https://m.media-amazon.com/images/I/615uJgswMHL._SX258_BO1,204,203,200_.jpg",
		Genre:       "Computer Science",
		Description: "The first comprehensive textbook on deep learning, written by leading experts in the field. It covers mathematical and conceptual background, deep learning techniques, and research perspectives.",
		Reviews: []entities.Review{
			{ID: "106", UserName: "Umar Farooq", Rating: 5, Comment: "Essential reading for anyone serious about deep learning. The best balance of theory and practical insights available.", Date: "2023-07-18"},
		},
	},
	{
		ID:          "7",
		Title:       "The Age of AI: And Our Human Future",
		Author:      "Henry Kissinger, Eric Schmidt, Daniel Huttenlocher",
		Year:        "2021",
		CoverURL:    "https://m.media-amazon.com/images/I/71zRkpn+MYL._SY160.jpg",
		Genre:       "Computer Science",
		Description: "An essential roadmap to our present and our future, The Age of AI explores how AI is challenging the very essence of what it means to be human, transforming our societies, our politics, and our economies.",
		Reviews: []entities.Review{
			{ID: "107", UserName: "Zara Siddiqui", Rating: 4, Comment: "A thoughtful analysis of AI's societal implications, written from a policy and strategic perspective rather than a technical one.", Date: "2023-09-02"},
		},
	},
	{
		ID:          "8",
		Title:       "Human Compatible: Artificial Intelligence and the Problem of Control",
		Author:      "Stuart Russell",
		Year:        "2019",
		CoverURL:    "https://m.media-amazon.com/images/I/71cSl7jGZ9L._SY160.jpg",
		Genre:       "Computer Science",
		Description: "In the popular imagination, AI systems are racing toward superintelligence, humans will be overtaken, and a sci-fi dystopia will follow. Russell argues that this scenario can be avoided and outlines a path to a more harmonious future.",
		Reviews: []entities.Review{
			{ID: "108", UserName: "Hassan Qureshi", Rating: 5, Comment: "A profound book that tackles the existential questions of AI with clarity and depth. Essential reading for understanding AI safety.", Date: "2023-05-14"},
			{ID: "112", UserName: "Mariam Javed", Rating: 5, Comment: "The clearest argument I have read for why the control problem matters today, not in some distant future.", Date: "2023-11-27"},
		},
	},
}

// SeedBooks returns a deep copy of the built-in catalog so callers can never
// mutate the seed itself.
func SeedBooks() []entities.Book {
	return cloneBooks(seedBooks)
}
