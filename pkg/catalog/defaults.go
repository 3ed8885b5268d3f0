package catalog

// =============================================================================
// Datos embebidos del equipo y de los proveedores. Son la configuración por
// defecto cuando no se define CATALOG_PATH.
// =============================================================================

// Default construye el catálogo embebido. Devuelve siempre una copia nueva
// para que ningún caller pueda mutar los datos compartidos.
func Default() Catalog {
	return Catalog{
		Directory: Directory{Units: []Unit{
			{Name: "Suyogya", Leaders: []Leader{
				{Name: "Suyogya", Members: []string{"Suyogya", "Ranju Maharjan", "Ishwor Acharya", "Ujwal Shrestha", "Amrita Kumari Shah", "Rashmi Maharjan", "Dilip Khanal"}},
				{Name: "Farukh", Members: []string{"Farukh", "Shresna Maharjan", "Jyoti Sardar", "Barsha Raskoti", "Subash Bishunke", "Ronish Makaju", "Inghang Limbu"}},
				{Name: "Santosh Sah(M)", Members: []string{"Santosh Sah", "Harish Bhatta", "Sumitra Gyapak", "Utsav Goja", "Gaurav Dhakal", "Jasmine Dhoju", "Prakash Khati"}},
			}},
			{Name: "Darshan", Leaders: []Leader{
				{Name: "Darshan", Members: []string{"Darshan", "Bijay Yonjan", "Saroj Suwal", "Astup Dhju", "Nisha Koju", "Rabin Koju", "Seesam Maharjan"}},
				{Name: "Ishwor", Members: []string{"Ishwor", "Purna Bahadur Shahi", "Kabi raj bhatta", "Nawanit Madhikarmy", "Anurup Chaudhary", "Manisha Bhujel", "Shishir Kandel"}},
				{Name: "Nabin", Members: []string{"Nabin", "Puja Chaulagain", "Rupesh Gurung", "Ashish Kumar Sah", "Bina Achhami", "Suraj Devkota", "Alish Poudel"}},
			}},
			{Name: "Bishal", Leaders: []Leader{
				{Name: "Bishal", Members: []string{"Bishal", "Geeta Prajapati", "Kiran chaudhary", "Subash Thapa", "Rajan Limbu", "Ram Tamang", "Rohan Rajchal"}},
				{Name: "Jayanti", Members: []string{"Jayanti", "Saloni Shrestha", "Anita Ramauli", "Nirnaya Pandey", "Samikshya Adhikari", "Sajana Khyaju", "Sachita Chaudhary"}},
				{Name: "Nirjal", Members: []string{"Nirjal", "Pujan Shrestha", "Bibesh Rai", "Srijana Magar", "Rupa Thokar", "Sharmila Dhami", "Saricha Gautam"}},
			}},
			{Name: "Anjana", Leaders: []Leader{
				{Name: "Anjana", Members: []string{"Anjana", "Sumesh Khoju", "Manish Chaudhary", "Suchana GC", "Sudeep", "Karan Achhami"}},
				{Name: "Rajesh", Members: []string{"Rajesh", "Mina Bogati", "Birat Laudari", "Sagar Regmi", "Ashok Makaju", "Rojan Shrestha"}},
				{Name: "Jeevan", Members: []string{"Jeevan", "Gaurav Ale Magar", "Bikal Jadali"}},
			}},
			{Name: "Puskar", Leaders: []Leader{
				{Name: "Puskar", Members: []string{"Puskar", "Anubhav Pancha", "Sunita", "Bhakta Achhami", "Binod Dhakal", "Sanish Shrestha"}},
				{Name: "Biwas", Members: []string{"Biwas", "Roshan Pun", "Sadhana Kumari Ray", "Sadipa Dhakal", "Sunita Kumal", "Sushma Achhami", "Binita Gora"}},
				{Name: "Bibek", Members: []string{"Bibek", "Dhan Bahadur BK", "Sikha", "Unika Maharjan", "Abhishek Karki", "Raj Bishunke"}},
			}},
			{Name: "Rukesh", Leaders: []Leader{
				{Name: "Rukesh", Members: []string{"Rukesh", "Bibek Budha", "Bibita Bati", "Amrit Dhakal", "Sanjok Khadka", "Kriti"}},
				{Name: "Madan Shrestha", Members: []string{"Madan Shrestha", "Bishal Achhami", "Anil Lakhaju", "Rocky Suwal", "Rahul Garu", "Raskin Baiju", "Rohan Bahala", "Sabina Dhamala"}},
			}},
			{Name: "Others", Leaders: []Leader{
				{Name: "Others", Members: []string{"Dishoj Sir", "Nilesh Sir", "Saugat Sir", "Manita Budhathoki", "Deebin Shrestha", "Sashank Sir", "Aditya Chaudhary", "Rejina", "Enjeela Chaudhary", "Raunak Subedi", "Niru Dhaubanjar", "Sujal Shrestha", "Ashant Chaudhary", "Arun Mahara", "Simon Pulami", "Labin Sir", "Bibek Tamang"}},
			}},
			{Name: "Pramod Niraula", Leaders: []Leader{
				{Name: "Pramod", Members: []string{"Aashish Lama", "Puja Kandel", "Swwosti Adhikari"}},
				{Name: "Puja", Members: []string{"Puja Yadav", "Ashwinee Poudel", "Swornima Chaudhary", "Gokul Budha"}},
				{Name: "Ashish", Members: []string{"Ashish Chantyal", "AR Ramesh"}},
				{Name: "Sarina", Members: []string{"Sarina Manandhar", "Debit Chaudhary"}},
			}},
		}},
		Menu: MenuCatalog{Vendors: []Vendor{
			{Name: "Vendor 1", Items: []string{
				"Momo Veg", "Momo Chi", "Momo Buff",
				"Chowmein Veg", "Chowmein Chi", "Chowmein Buff",
				"Fried Rice Veg", "Fried Rice Chi", "Fried Rice Buff",
				"Burger Veg", "Burger Chi",
				"Sandwich Veg", "Sandwich Chi",
				"Rice w butter chicken", "Rice w paneer tofu",
				"Curry Veg", "Curry Chi",
			}},
			{Name: "Vendor 2", Items: []string{
				"Non veg Khana set", "Veg Khana set",
			}},
		}},
	}
}
